// Package cards projects content records into display-ready card views.
//
// Projections never fail: missing optional fields degrade to omitted lines,
// placeholders or empty strings.
package cards
