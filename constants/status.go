package constants

// IngestState is the canonical state of an ingestion as it moves through
// the pipeline. States advance in order; FAILED is reachable from any
// non-terminal state and DUPLICATE short-circuits after the dedup check.
type IngestState string

const (
	StateHashing          IngestState = "HASHING"
	StateDedupCheck       IngestState = "DEDUP_CHECK"
	StateExtracting       IngestState = "EXTRACTING"
	StateWritingText      IngestState = "WRITING_TEXT"
	StateCopyingOriginal  IngestState = "COPYING_ORIGINAL"
	StatePersisting       IngestState = "PERSISTING"
	StateExtractingImages IngestState = "EXTRACTING_IMAGES"
	StateDone             IngestState = "DONE"
	StateDuplicate        IngestState = "DUPLICATE"
	StateFailed           IngestState = "FAILED"
)
