package reservation

// RateLine is one immutable pricing adjustment attached to a detail. The
// lifecycle engine only ever reads these.
type RateLine struct {
	AdjustmentType     string
	AdjustmentValue    int64
	TaxRate            float64
	Price              Money
	IncludeInCancelFee bool
}

// AggregateRates sums rate lines into the price to persist on a detail. In
// cancellation mode only the fee-eligible lines count; otherwise every line
// does. An empty input, or an empty post-filter set, yields zero.
func AggregateRates(lines []RateLine, cancellationOnly bool) Money {
	total := ZeroMoney()
	for _, line := range lines {
		if cancellationOnly && !line.IncludeInCancelFee {
			continue
		}
		total = total.Add(line.Price)
	}
	return total
}
