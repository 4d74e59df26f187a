package frame

import "github.com/rhoneyager-tomorrow/ioda-converters/internal/query"

// Decoder is the contract an external collaborator must satisfy to
// populate a DataFrame (§6): given a raw message and the QuerySet that
// was resolved against it, decode one DataField per queried name into
// the frame reserved for it. Decoding raw binary records and walking
// descriptor metadata are explicitly out of this repository's scope
// (§1); this interface only pins down the shape a decoder must produce.
type Decoder interface {
	Decode(message []byte, qs *query.QuerySet, frame *DataFrame) error
}
