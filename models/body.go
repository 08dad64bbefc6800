// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/url"

// DecodedBody is the view of a request body produced by the body decoding
// stage. At most one of Form and JSON is populated, depending on the
// declared media type.
type DecodedBody struct {
	// MediaType is the declared media type without parameters
	// (e.g. "application/json"). Empty when the request had no body.
	MediaType string

	// Form holds the fields of an application/x-www-form-urlencoded body.
	Form url.Values

	// JSON holds the decoded value of an application/json or
	// application/vnd.api+json body: a map[string]any or a []any.
	JSON any
}

// IsEmpty reports whether no decoder produced a value.
func (b DecodedBody) IsEmpty() bool {
	return b.Form == nil && b.JSON == nil
}
