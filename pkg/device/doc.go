// Package device adds and removes device records in the "devices"
// collection.
package device
