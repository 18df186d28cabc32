package idv

// Types in this file mirror the identity_verification/get response body one to one.
// Every field is optional on the wire: absent fields unmarshal to nil and are omitted
// when marshalling back, so a round trip never invents values the provider did not send.

// IdentityVerification is the top-level resource returned by identity_verification/get,
// representing one verification attempt and all of its sub-checks.
type IdentityVerification struct {
	ID                      *string                  `json:"id,omitempty"`
	ClientUserID            *string                  `json:"client_user_id,omitempty"`
	CreatedAt               *string                  `json:"created_at,omitempty"`
	CompletedAt             *string                  `json:"completed_at,omitempty"`
	PreviousAttemptID       *string                  `json:"previous_attempt_id,omitempty"`
	ShareableURL            *string                  `json:"shareable_url,omitempty"`
	Template                *TemplateReference       `json:"template,omitempty"`
	User                    *UserData                `json:"user,omitempty"`
	Status                  *string                  `json:"status,omitempty"`
	Steps                   *StepSummary             `json:"steps,omitempty"`
	DocumentaryVerification *DocumentaryVerification `json:"documentary_verification,omitempty"`
	SelfieCheck             *SelfieCheck             `json:"selfie_check,omitempty"`
	KYCCheck                *KYCCheck                `json:"kyc_check,omitempty"`
	RiskCheck               *RiskCheck               `json:"risk_check,omitempty"`
	WatchlistScreeningID    *string                  `json:"watchlist_screening_id,omitempty"`
	RedactedAt              *string                  `json:"redacted_at,omitempty"`
	RequestID               *string                  `json:"request_id,omitempty"`
}

// TemplateReference identifies the verification flow template the attempt ran against.
type TemplateReference struct {
	ID      *string `json:"id,omitempty"`
	Version *int    `json:"version,omitempty"`
}

// UserData is the subject being verified, as submitted to or collected by the provider.
type UserData struct {
	PhoneNumber  *string       `json:"phone_number,omitempty"`
	DateOfBirth  *string       `json:"date_of_birth,omitempty"`
	IPAddress    *string       `json:"ip_address,omitempty"`
	EmailAddress *string       `json:"email_address,omitempty"`
	Name         *UserName     `json:"name,omitempty"`
	Address      *UserAddress  `json:"address,omitempty"`
	IDNumber     *UserIDNumber `json:"id_number,omitempty"`
}

type UserName struct {
	GivenName  *string `json:"given_name,omitempty"`
	FamilyName *string `json:"family_name,omitempty"`
}

type UserAddress struct {
	Street     *string `json:"street,omitempty"`
	Street2    *string `json:"street2,omitempty"`
	City       *string `json:"city,omitempty"`
	Region     *string `json:"region,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`
}

type UserIDNumber struct {
	Value *string `json:"value,omitempty"`
	Type  *string `json:"type,omitempty"`
}

// StepSummary holds one status string per stage of the verification flow.
type StepSummary struct {
	AcceptTOS               *string `json:"accept_tos,omitempty"`
	VerifySMS               *string `json:"verify_sms,omitempty"`
	KYCCheck                *string `json:"kyc_check,omitempty"`
	DocumentaryVerification *string `json:"documentary_verification,omitempty"`
	SelfieCheck             *string `json:"selfie_check,omitempty"`
	WatchlistScreening      *string `json:"watchlist_screening,omitempty"`
	RiskCheck               *string `json:"risk_check,omitempty"`
}

// DocumentaryVerification is the document-based check, with one Document entry per
// submission attempt in the order the provider returned them.
type DocumentaryVerification struct {
	Status    *string    `json:"status,omitempty"`
	Documents []Document `json:"documents,omitempty"`
}

type Document struct {
	Status        *string                `json:"status,omitempty"`
	Attempt       *int                   `json:"attempt,omitempty"`
	Images        *DocumentImages        `json:"images,omitempty"`
	ExtractedData *DocumentExtractedData `json:"extracted_data,omitempty"`
	Analysis      *DocumentAnalysis      `json:"analysis,omitempty"`
	RedactedAt    *string                `json:"redacted_at,omitempty"`
}

// DocumentImages are temporary URLs for the captured document media.
type DocumentImages struct {
	OriginalFront *string `json:"original_front,omitempty"`
	OriginalBack  *string `json:"original_back,omitempty"`
	CroppedFront  *string `json:"cropped_front,omitempty"`
	CroppedBack   *string `json:"cropped_back,omitempty"`
	Face          *string `json:"face,omitempty"`
}

// DocumentExtractedData is the OCR output for one submitted document.
type DocumentExtractedData struct {
	IDNumber       *string           `json:"id_number,omitempty"`
	Category       *string           `json:"category,omitempty"`
	ExpirationDate *string           `json:"expiration_date,omitempty"`
	IssuingCountry *string           `json:"issuing_country,omitempty"`
	IssuingRegion  *string           `json:"issuing_region,omitempty"`
	DateOfBirth    *string           `json:"date_of_birth,omitempty"`
	Address        *ExtractedAddress `json:"address,omitempty"`
}

type ExtractedAddress struct {
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Region     *string `json:"region,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`
}

// DocumentAnalysis is the provider's authenticity assessment of one document.
type DocumentAnalysis struct {
	Authenticity  *string                `json:"authenticity,omitempty"`
	ImageQuality  *string                `json:"image_quality,omitempty"`
	ExtractedData *AnalysisExtractedData `json:"extracted_data,omitempty"`
}

type AnalysisExtractedData struct {
	Name           *string `json:"name,omitempty"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	ExpirationDate *string `json:"expiration_date,omitempty"`
	IssuingCountry *string `json:"issuing_country,omitempty"`
}

// SelfieCheck is the selfie-based check, one Selfie per capture attempt in order.
type SelfieCheck struct {
	Status  *string  `json:"status,omitempty"`
	Selfies []Selfie `json:"selfies,omitempty"`
}

type Selfie struct {
	Status   *string         `json:"status,omitempty"`
	Attempt  *int            `json:"attempt,omitempty"`
	Capture  *SelfieCapture  `json:"capture,omitempty"`
	Analysis *SelfieAnalysis `json:"analysis,omitempty"`
}

type SelfieCapture struct {
	ImageURL *string `json:"image_url,omitempty"`
	VideoURL *string `json:"video_url,omitempty"`
}

type SelfieAnalysis struct {
	DocumentComparison *string `json:"document_comparison,omitempty"`
}

// KYCCheck is the identity-database check with per-field match summaries.
type KYCCheck struct {
	Status      *string                `json:"status,omitempty"`
	Address     *KYCAddressSummary     `json:"address,omitempty"`
	Name        *KYCNameSummary        `json:"name,omitempty"`
	DateOfBirth *KYCDateOfBirthSummary `json:"date_of_birth,omitempty"`
	IDNumber    *KYCIDNumberSummary    `json:"id_number,omitempty"`
	PhoneNumber *KYCPhoneSummary       `json:"phone_number,omitempty"`
}

type KYCAddressSummary struct {
	Summary *string `json:"summary,omitempty"`
	POBox   *string `json:"po_box,omitempty"`
	Type    *string `json:"type,omitempty"`
}

type KYCNameSummary struct {
	Summary *string `json:"summary,omitempty"`
}

type KYCDateOfBirthSummary struct {
	Summary *string `json:"summary,omitempty"`
}

type KYCIDNumberSummary struct {
	Summary *string `json:"summary,omitempty"`
}

type KYCPhoneSummary struct {
	Summary  *string `json:"summary,omitempty"`
	AreaCode *string `json:"area_code,omitempty"`
}

// RiskCheck aggregates the fraud and abuse signals collected during the attempt.
type RiskCheck struct {
	Status               *string               `json:"status,omitempty"`
	Behavior             *RiskCheckBehavior    `json:"behavior,omitempty"`
	Email                *RiskCheckEmail       `json:"email,omitempty"`
	Phone                *RiskCheckPhone       `json:"phone,omitempty"`
	Devices              []RiskCheckDevice     `json:"devices,omitempty"`
	IdentityAbuseSignals *IdentityAbuseSignals `json:"identity_abuse_signals,omitempty"`
}

type RiskCheckBehavior struct {
	UserInteractions  *string `json:"user_interactions,omitempty"`
	FraudRingDetected *string `json:"fraud_ring_detected,omitempty"`
	BotDetected       *string `json:"bot_detected,omitempty"`
}

type RiskCheckEmail struct {
	IsDeliverable        *string  `json:"is_deliverable,omitempty"`
	BreachCount          *int     `json:"breach_count,omitempty"`
	FirstBreachedAt      *string  `json:"first_breached_at,omitempty"`
	LastBreachedAt       *string  `json:"last_breached_at,omitempty"`
	DomainRegisteredAt   *string  `json:"domain_registered_at,omitempty"`
	DomainIsFreeProvider *string  `json:"domain_is_free_provider,omitempty"`
	DomainIsCustom       *string  `json:"domain_is_custom,omitempty"`
	DomainIsDisposable   *string  `json:"domain_is_disposable,omitempty"`
	TopLevelDomain       *string  `json:"top_level_domain,omitempty"`
	LinkedServices       []string `json:"linked_services,omitempty"`
}

type RiskCheckPhone struct {
	LinkedServices []string `json:"linked_services,omitempty"`
}

type RiskCheckDevice struct {
	IPAddress      *string  `json:"ip_address,omitempty"`
	IPProxyType    *string  `json:"ip_proxy_type,omitempty"`
	LinkedServices []string `json:"linked_services,omitempty"`
}

// IdentityAbuseSignals scores the likelihood that the submitted identity is synthetic
// or stolen.
type IdentityAbuseSignals struct {
	SyntheticIdentity *AbuseSignalScore `json:"synthetic_identity,omitempty"`
	StolenIdentity    *AbuseSignalScore `json:"stolen_identity,omitempty"`
}

type AbuseSignalScore struct {
	Score *int `json:"score,omitempty"`
}
