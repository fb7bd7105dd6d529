package field

// ComputeRequest is the JSON body for POST /api/compute.
type ComputeRequest struct {
	Current   float64   `json:"current"`   // Amperes
	Distances []float64 `json:"distances"` // meters from the wire
}

// Result is one computed sample on the wire.
type Result struct {
	Distance float64 `json:"distance"` // meters
	Field    float64 `json:"field"`    // Tesla
}

// ComputeResponse is the JSON response for compute and profile endpoints.
type ComputeResponse struct {
	Results []Result `json:"results"`
}

// StatusResponse is the JSON body for GET /api/status.
type StatusResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

func toResults(samples []Sample) []Result {
	results := make([]Result, 0, len(samples))
	for _, s := range samples {
		results = append(results, Result{Distance: s.Distance, Field: s.Magnitude})
	}
	return results
}
