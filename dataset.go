package pagesift

// Bookkeeping keys attached to records by the extraction strategies. They
// carry provenance, not content, and are excluded when deciding whether a
// record is meaningful.
const (
	KeyIndex  = "_index"
	KeyType   = "_type"
	KeySource = "_source"
)

// Record is one extracted item. Fields are dynamic per source node; there is
// no fixed schema. Values are strings, numbers, typed sub-values (Link,
// Image, SocialLink) or raw decoded JSON-LD.
type Record map[string]any

// FieldCount returns the number of fields excluding bookkeeping keys.
func (r Record) FieldCount() int {
	n := 0
	for k := range r {
		switch k {
		case KeyIndex, KeyType, KeySource:
		default:
			n++
		}
	}
	return n
}

// Empty reports whether the record carries nothing beyond bookkeeping keys.
// Empty records are discarded by the extraction strategies.
func (r Record) Empty() bool {
	return r.FieldCount() == 0
}

// Link is a hyperlink extracted from a cell or item.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image is an image reference extracted from a cell or item.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// SocialLink is a recognized social-media profile link.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// DatasetType identifies the strategy that produced a dataset.
type DatasetType string

// Dataset types, one per extraction strategy.
const (
	DatasetTable      DatasetType = "table"
	DatasetList       DatasetType = "list"
	DatasetCards      DatasetType = "cards"
	DatasetGrid       DatasetType = "grid"
	DatasetSocial     DatasetType = "social"
	DatasetStructured DatasetType = "structured"
	DatasetLinks      DatasetType = "links"
)

// MaxDatasetRows caps the rows reported per dataset. The cap is a
// payload-size guard, not a quality judgement.
const MaxDatasetRows = 2000

// Dataset is one named, typed collection of records extracted from one
// detected region of the document.
type Dataset struct {
	ID        string      `json:"id"`
	Type      DatasetType `json:"type"`
	Name      string      `json:"name"`
	Rows      []Record    `json:"rows"`
	Truncated bool        `json:"truncated"`
}

// Cap truncates the dataset to at most limit rows and marks it truncated.
// Datasets at or under the limit are left untouched.
func (d *Dataset) Cap(limit int) {
	if len(d.Rows) > limit {
		d.Rows = d.Rows[:limit]
		d.Truncated = true
	}
}

// Meta carries bookkeeping about one extraction pass.
type Meta struct {
	// AutoScrolled reports whether scrolling provoked document growth.
	AutoScrolled bool `json:"autoScrolled"`
}

// ExtractionResult is the outcome of one extraction pass. Rows always equals
// the rows of the largest dataset found, or an empty slice. Consumers should
// treat Datasets as the authoritative multi-result set and Rows as a
// convenience pointer to the single richest one.
type ExtractionResult struct {
	Rows     []Record  `json:"rows"`
	Meta     Meta      `json:"meta"`
	Datasets []Dataset `json:"datasets"`
}
