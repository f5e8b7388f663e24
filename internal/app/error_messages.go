// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidJSONProvided = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a decoded request fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgLoginAlreadyExists is returned when a registration request uses a
	// login that is already taken.
	MsgLoginAlreadyExists = "login already exists"

	// MsgInvalidLoginCredential is returned for both an unknown login and a
	// wrong credential so probes cannot tell registered accounts apart.
	MsgInvalidLoginCredential = "invalid login or credential"

	// MsgLoginIsRequired is returned when the params endpoint is called
	// without a login query parameter.
	MsgLoginIsRequired = "login is required"

	// MsgUserNotFound is returned when the params endpoint is asked about a
	// login that has no account.
	MsgUserNotFound = "user not found"

	// MsgNoVaultUploadedYet is returned when a vault download is requested
	// before any vault has been stored for the account.
	MsgNoVaultUploadedYet = "no vault uploaded yet"

	// MsgInvalidUploadPayload is returned when a vault upload carries an
	// empty encrypted blob.
	MsgInvalidUploadPayload = "invalid upload payload"
)
