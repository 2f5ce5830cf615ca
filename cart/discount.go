package cart

// DiskonRupiah derives the absolute discount from a percentage. The
// percentage is clamped to [0, 100] so the discount never exceeds the price.
func DiskonRupiah(price, persen float64) float64 {
	if price <= 0 {
		return 0
	}
	if persen < 0 {
		persen = 0
	}
	if persen > 100 {
		persen = 100
	}
	return price * persen / 100
}

// DiskonPersen derives the percentage from an absolute discount. The amount
// is clamped to [0, price], capping the result at 100.
func DiskonPersen(price, rupiah float64) float64 {
	if price <= 0 {
		return 0
	}
	if rupiah < 0 {
		rupiah = 0
	}
	if rupiah > price {
		rupiah = price
	}
	return rupiah / price * 100
}
