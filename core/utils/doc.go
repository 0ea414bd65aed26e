// Package utils provides common utility functions for the roster-manager
// application. It includes identifier normalization helpers shared by the
// roster store, the reconciliation engine, and the workbook codec.
package utils
