// Package qtversion adds and removes Qt version records in the "qtversion"
// collection.
//
// Qt versions installed by an SDK are namespaced: their id is stored in the
// autodetectionSource field with an "SDK." prefix. Kits refer to them by
// that namespaced id, see [ExtendID].
package qtversion
