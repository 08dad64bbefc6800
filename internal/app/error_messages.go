// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// gateway handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgGreeting is the text of the greeting route.
	MsgGreeting = "Hello, Ethereum!"

	// MsgNotFound is returned when no stage of the pipeline produced a
	// response for the request.
	MsgNotFound = "Not found"

	// MsgServerError is returned for every failure that has no specific
	// presentation. Internal detail is never appended to it.
	MsgServerError = "Server error!"

	// MsgCSRFTokenMismatchRU asks the user to reload the page after an
	// anti-forgery token mismatch. The wording is kept exactly as shipped.
	MsgCSRFTokenMismatchRU = "Неверный CRSF token. Обновите текущую страницу и повторите действие снова."

	// MsgCSRFTokenMismatchEN is the English variant of MsgCSRFTokenMismatchRU.
	MsgCSRFTokenMismatchEN = "Invalid CSRF token. Refresh the current page and try again."

	// MsgStatusOK is reported by the health endpoint when every backing
	// service answers.
	MsgStatusOK = "ok"
)

// StaticSiteOrigin is the companion static site every unmatched request is
// redirected to.
const StaticSiteOrigin = "https://eth2phone.github.io"
