// Package parser decodes show sheets written by tvsheets.Export.
package parser
