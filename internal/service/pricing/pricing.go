package pricing

import (
	"amerex/internal/entities"
)

// Тарифы калькулятора на публичном сайте, цена за фунт сверх базовой ставки.
type tierRate struct {
	base      float64
	perWeight float64
}

var tierRates = map[entities.QuoteTierType]tierRate{
	entities.TierExpress:       {base: 15.99, perWeight: 2.50},
	entities.TierStandard:      {base: 9.99, perWeight: 1.20},
	entities.TierFreight:       {base: 5.99, perWeight: 0.85},
	entities.TierInternational: {base: 25.99, perWeight: 3.75},
}

const (
	signatureCost = 3.00
	saturdayCost  = 15.00
	packagingCost = 8.00
	// Страховка в калькуляторе считается от объявленной ценности.
	quoteInsuranceRate = 0.02

	// Ставки мастера оформления отличаются от калькулятора.
	shipmentInsuranceRate = 0.015
	internationalFee      = 50.00
	taxRate               = 0.10
)

// Tariff - фиксированная цена уровня сервиса и срок доставки в днях.
type Tariff struct {
	Price       float64
	TransitDays int
}

var serviceTariffs = map[entities.ServiceLevelType]Tariff{
	entities.ServiceExpress:  {Price: 99.99, TransitDays: 2},
	entities.ServiceStandard: {Price: 49.99, TransitDays: 5},
	entities.ServiceFreight:  {Price: 24.99, TransitDays: 10},
}

type Pricing struct{}

func New() *Pricing {
	return &Pricing{}
}

// ComputeQuote считает стоимость для калькулятора: база + вес + выбранные опции.
func (p *Pricing) ComputeQuote(
	tier entities.QuoteTierType,
	weight float64,
	declaredValue float64,
	options entities.QuoteOptions,
) (entities.QuoteBreakdown, error) {
	rate, ok := tierRates[tier]
	if !ok {
		return entities.QuoteBreakdown{}, ErrUnknownTier
	}
	if weight <= 0 {
		return entities.QuoteBreakdown{}, ErrInvalidWeight
	}
	if options.Insurance && declaredValue <= 0 {
		return entities.QuoteBreakdown{}, ErrInvalidDeclaredValue
	}

	breakdown := entities.QuoteBreakdown{
		BaseShipping: rate.base + weight*rate.perWeight,
	}

	if options.Signature {
		breakdown.SignatureCost = signatureCost
	}
	if options.Insurance {
		breakdown.InsuranceCost = declaredValue * quoteInsuranceRate
	}
	if options.Saturday {
		breakdown.SaturdayCost = saturdayCost
	}
	if options.Packaging {
		breakdown.PackagingCost = packagingCost
	}

	breakdown.Total = breakdown.BaseShipping +
		breakdown.SignatureCost +
		breakdown.InsuranceCost +
		breakdown.SaturdayCost +
		breakdown.PackagingCost

	return breakdown, nil
}

// ComputeShipmentCost считает итог заказа в мастере.
// Порядок фиксирован: надбавки, затем скидка от полной промежуточной суммы,
// затем налог от суммы после скидки.
func (p *Pricing) ComputeShipmentCost(
	basePrice float64,
	declaredValue float64,
	hasInsurance bool,
	isInternational bool,
	coupon *entities.Coupon,
) entities.CostBreakdown {
	breakdown := entities.CostBreakdown{
		BasePrice: basePrice,
	}

	if hasInsurance {
		breakdown.InsuranceAmount = declaredValue * shipmentInsuranceRate
	}
	if isInternational {
		breakdown.InternationalFee = internationalFee
	}

	breakdown.Subtotal = breakdown.BasePrice +
		breakdown.InsuranceAmount +
		breakdown.InternationalFee

	if coupon != nil {
		switch coupon.DiscountType {
		case entities.DiscountPercentage:
			breakdown.DiscountAmount = breakdown.Subtotal * coupon.DiscountValue / 100
		case entities.DiscountFixed:
			breakdown.DiscountAmount = coupon.DiscountValue
			if breakdown.DiscountAmount > breakdown.Subtotal {
				breakdown.DiscountAmount = breakdown.Subtotal
			}
		case entities.DiscountFreeShipping:
			breakdown.DiscountAmount = breakdown.Subtotal
		}
	}

	breakdown.TaxAmount = (breakdown.Subtotal - breakdown.DiscountAmount) * taxRate
	breakdown.TotalCost = breakdown.Subtotal - breakdown.DiscountAmount + breakdown.TaxAmount

	return breakdown
}

// ServiceTariff возвращает тариф уровня сервиса для мастера.
func (p *Pricing) ServiceTariff(level entities.ServiceLevelType) (Tariff, error) {
	tariff, ok := serviceTariffs[level]
	if !ok {
		return Tariff{}, ErrUnknownServiceLevel
	}
	return tariff, nil
}
