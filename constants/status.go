package constants

// PageOutcome is the per-page result of an ingestion run.
type PageOutcome string

// Stable values (logged and exported as-is).
const (
	PageInserted    PageOutcome = "INSERTED"          // new pay statement row
	PageSkipped     PageOutcome = "SKIPPED_DUPLICATE" // (individual, date) already present
	PageWriteFailed PageOutcome = "WRITE_FAILED"      // document store rejected the page
	PageSplitFailed PageOutcome = "SPLIT_FAILED"      // page could not be isolated from the source
)

// Failed reports whether the outcome belongs in the failed bucket of a run report.
func (o PageOutcome) Failed() bool {
	return o == PageWriteFailed || o == PageSplitFailed
}
