package store

import "agrilink-backend/internal/models"

// The store never hands out references into its own collections; every getter
// returns a copy so callers cannot mutate store state behind its back.

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneProduct(p models.Product) models.Product {
	out := p
	out.CO2SavingsPerKg = cloneFloatPtr(p.CO2SavingsPerKg)
	return out
}

func cloneUser(u models.User) models.User {
	out := u
	out.SellerInterests = cloneStrings(u.SellerInterests)
	out.BuyerInterests = cloneStrings(u.BuyerInterests)
	out.CommissionRate = cloneFloatPtr(u.CommissionRate)
	out.Location = cloneStringPtr(u.Location)
	if u.BusinessProfile != nil {
		bp := *u.BusinessProfile
		out.BusinessProfile = &bp
	}
	return out
}

func cloneOrder(o models.Order) models.Order {
	out := o
	out.Items = make([]models.OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	if o.Logistics != nil {
		l := *o.Logistics
		l.DriverID = cloneStringPtr(o.Logistics.DriverID)
		out.Logistics = &l
	}
	if o.Issue != nil {
		iss := *o.Issue
		out.Issue = &iss
	}
	if o.PackedAt != nil {
		t := *o.PackedAt
		out.PackedAt = &t
	}
	if o.DeliveredAt != nil {
		t := *o.DeliveredAt
		out.DeliveredAt = &t
	}
	return out
}

func cloneLot(it models.InventoryItem) models.InventoryItem {
	out := it
	if it.DiscountRule != nil {
		r := *it.DiscountRule
		out.DiscountRule = &r
	}
	if it.HarvestedAt != nil {
		t := *it.HarvestedAt
		out.HarvestedAt = &t
	}
	if it.ExpiresAt != nil {
		t := *it.ExpiresAt
		out.ExpiresAt = &t
	}
	if it.LastPriceVerifiedAt != nil {
		t := *it.LastPriceVerifiedAt
		out.LastPriceVerifiedAt = &t
	}
	return out
}

func cloneCustomer(c models.Customer) models.Customer {
	out := c
	out.UserID = cloneStringPtr(c.UserID)
	out.SupplierID = cloneStringPtr(c.SupplierID)
	out.MarkupPercent = cloneFloatPtr(c.MarkupPercent)
	out.AssignedRepID = cloneStringPtr(c.AssignedRepID)
	return out
}

func clonePriceRequest(r models.SupplierPriceRequest) models.SupplierPriceRequest {
	out := r
	out.Items = make([]models.PriceRequestItem, len(r.Items))
	for i, it := range r.Items {
		it.OfferedPrice = cloneFloatPtr(it.OfferedPrice)
		if it.IsMatchingTarget != nil {
			b := *it.IsMatchingTarget
			it.IsMatchingTarget = &b
		}
		out.Items[i] = it
	}
	if r.SubmittedAt != nil {
		t := *r.SubmittedAt
		out.SubmittedAt = &t
	}
	if r.ResolvedAt != nil {
		t := *r.ResolvedAt
		out.ResolvedAt = &t
	}
	return out
}

func cloneRegistration(r models.RegistrationRequest) models.RegistrationRequest {
	out := r
	if r.Consumer != nil {
		c := *r.Consumer
		out.Consumer = &c
	}
	if r.DecidedAt != nil {
		t := *r.DecidedAt
		out.DecidedAt = &t
	}
	return out
}
