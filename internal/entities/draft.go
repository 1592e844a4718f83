package entities

import "time"

// Draft - черновик отправления, живёт в памяти до подтверждения оплаты.
type Draft struct {
	ID     string
	UserID int64

	Step DraftStepType

	Sender    Party
	Recipient Party

	PickupInstructions   string
	DeliveryInstructions string

	Package Package

	VideoProofURL string
	VideoNotes    string

	ServiceType ServiceLevelType
	PickupDate  time.Time
	PickupTime  string

	EstimatedDelivery time.Time

	HasInsurance    bool
	IsInternational bool

	TaxID       string
	HSCode      string
	ContentType string

	Coupon *Coupon

	Cost CostBreakdown

	CreatedAt time.Time
	UpdatedAt time.Time
}

type DraftStepType string

const (
	StepSender    DraftStepType = "sender"
	StepRecipient DraftStepType = "recipient"
	StepPackage   DraftStepType = "package"
	StepVideo     DraftStepType = "video"
	StepService   DraftStepType = "service"
	StepPayment   DraftStepType = "payment"
)

func (s DraftStepType) String() string {
	return string(s)
}

// StepOrder - строгий порядок шагов мастера, переходы только на соседний шаг.
var StepOrder = []DraftStepType{
	StepSender,
	StepRecipient,
	StepPackage,
	StepVideo,
	StepService,
	StepPayment,
}

type ServiceLevelType string

const (
	ServiceExpress  ServiceLevelType = "express"
	ServiceStandard ServiceLevelType = "standard"
	ServiceFreight  ServiceLevelType = "freight"
)

func (s ServiceLevelType) String() string {
	return string(s)
}

type CostBreakdown struct {
	BasePrice        float64
	InsuranceAmount  float64
	InternationalFee float64
	Subtotal         float64
	DiscountAmount   float64
	TaxAmount        float64
	TotalCost        float64
}

// DraftModify - частичное обновление полей шага, мерж только после валидации.
type DraftModify struct {
	Sender    *Party
	Recipient *Party

	PickupInstructions   *string
	DeliveryInstructions *string

	Package *Package

	VideoProofURL *string
	VideoNotes    *string

	ServiceType *ServiceLevelType
	PickupDate  *time.Time
	PickupTime  *string

	TaxID       *string
	HSCode      *string
	ContentType *string
}
