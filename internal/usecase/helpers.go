package usecase

// filterAllowed keeps only the allow-listed keys of a raw update map.
func filterAllowed(updates map[string]interface{}, allowed ...string) map[string]interface{} {
	out := map[string]interface{}{}
	for _, key := range allowed {
		if v, ok := updates[key]; ok {
			out[key] = v
		}
	}
	return out
}
