package collector

import (
	"bufio"
	"io"
	"strconv"
	"urlstats/pkg/domain"
)

// Render writes report in the text format:
//
//	total urls <N>, domains <D>, paths <P>
//
//	top domains
//	<count> <domain>
//
//	top paths
//	<count> <path>
//
// Every section ends with a blank line.
func Render(w io.Writer, report domain.Report) error {
	out := bufio.NewWriter(w)

	out.WriteString("total urls ")
	out.WriteString(strconv.FormatUint(report.TotalURLs, 10))
	out.WriteString(", domains ")
	out.WriteString(strconv.Itoa(report.Domains))
	out.WriteString(", paths ")
	out.WriteString(strconv.Itoa(report.Paths))
	out.WriteString("\n\n")

	writeSection(out, "top domains", report.TopDomains)
	writeSection(out, "top paths", report.TopPaths)

	// bufio.Writer keeps the first error; Flush reports it
	return out.Flush() //nolint: wrapcheck
}

func writeSection(out *bufio.Writer, title string, records []domain.Record) {
	out.WriteString(title)
	out.WriteByte('\n')
	for _, r := range records {
		out.WriteString(strconv.FormatUint(r.Count, 10))
		out.WriteByte(' ')
		out.WriteString(r.Key)
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
}
