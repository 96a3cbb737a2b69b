// Package domain contains the value types shared between the statistics
// collector, the top-K selection and the report renderer. They carry no
// infrastructure concerns.
package domain
