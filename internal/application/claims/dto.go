package claims

// Rejection reports one candidate that failed validation, with its
// machine-readable reason.
type Rejection struct {
	Address string `json:"address"`
	ItemID  string `json:"item_id"`
	Reason  string `json:"reason"`
}

// SubmitResult is the outcome of one admission request under the
// partial-admission policy. AdmittedCount counts candidates that passed
// validation; PublishedCount counts messages actually delivered to the
// queue. The two only differ when publishing fails part-way, which is also
// reported as an error.
type SubmitResult struct {
	AdmittedCount  int         `json:"admitted_count"`
	PublishedCount int         `json:"published_count"`
	Rejections     []Rejection `json:"rejections"`
}

// Admitted reports whether at least one candidate was admitted.
func (r *SubmitResult) Admitted() bool {
	return r.AdmittedCount > 0
}
