package idv

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Identity Verification Types", func() {

	Context("When a full record round trips through JSON", func() {
		It("should come back structurally equal", func() {
			var first IdentityVerification
			Expect(json.Unmarshal([]byte(fullResponse), &first)).To(BeNil())

			encoded, err := json.Marshal(first)
			Expect(err).To(BeNil())

			var second IdentityVerification
			Expect(json.Unmarshal(encoded, &second)).To(BeNil())
			Expect(second).To(Equal(first))
		})

		It("should not invent fields that were absent on the wire", func() {
			var record IdentityVerification
			Expect(json.Unmarshal([]byte(`{"id": "idv_123"}`), &record)).To(BeNil())

			encoded, err := json.Marshal(record)
			Expect(err).To(BeNil())

			var raw map[string]json.RawMessage
			Expect(json.Unmarshal(encoded, &raw)).To(BeNil())
			Expect(raw).To(HaveLen(1))
			Expect(raw).To(HaveKey("id"))
		})
	})

	Context("When a record carries empty nested objects", func() {
		It("should keep them distinct from absent ones", func() {
			var record IdentityVerification
			Expect(json.Unmarshal([]byte(`{"user": {}, "steps": {}}`), &record)).To(BeNil())

			Expect(record.User).ToNot(BeNil())
			Expect(record.User.Name).To(BeNil())
			Expect(record.Steps).ToNot(BeNil())
			Expect(record.Steps.AcceptTOS).To(BeNil())
			Expect(record.Template).To(BeNil())
		})
	})
})
