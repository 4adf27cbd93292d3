package utils

// Map applies transform to every item and returns the results in order.
func Map[T any, R any](items []T, transform func(T) R) []R {
	results := make([]R, 0, len(items))
	for _, item := range items {
		results = append(results, transform(item))
	}

	return results
}
