// Package utils provides strict conversions for values read from database
// rows.
package utils
