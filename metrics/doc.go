// Package metrics exports search activity to Prometheus.
//
//	collector := metrics.MustNewCollector(prometheus.NewRegistry())
//	res, err := search.AStarSearch(ctx, p, nil, search.WithListener(collector))
package metrics
