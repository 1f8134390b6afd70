package engine

import "shopkeep/internal/domain/entity"

// GenerateMarket draws today's market reports without replacement from the report pool and
// sums their bias contributions.
func (e *Engine) GenerateMarket() ([]string, map[entity.BiasKey]float64) {
	pool := e.catalog.Reports()
	eco := e.catalog.Economy()

	reports := []string{}
	bias := map[entity.BiasKey]float64{}

	n := e.intn(eco.MaxMarketReports + 1)
	for range n {
		if len(pool) == 0 {
			break
		}
		i := e.intn(len(pool))
		report := pool[i]
		pool = append(pool[:i], pool[i+1:]...)

		reports = append(reports, report.Message)
		for key, delta := range report.Bias {
			bias[key] += delta
		}
	}

	return reports, bias
}
