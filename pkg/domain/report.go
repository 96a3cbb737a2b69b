package domain

// Report is the outcome of one corpus scan.
type Report struct {
	// TotalURLs counts every accepted URL occurrence.
	TotalURLs uint64 `json:"totalUrls"`
	// Domains is the number of distinct domains.
	Domains int `json:"domains"`
	// Paths is the number of distinct paths.
	Paths int `json:"paths"`

	TopDomains []Record `json:"topDomains"`
	TopPaths   []Record `json:"topPaths"`
}
