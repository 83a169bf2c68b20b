// Package clientconfig owns the default tenant configuration and the merge
// that turns a tenant's partial JSON file into a complete
// [models.ClientConfig].
//
// Both configuration loaders (the cached HTTP loader used by the preview
// client and the file-reading resolver behind the feedback endpoint) go
// through [Parse] and [Merge] so that a field can never fall back to two
// different defaults.
package clientconfig
