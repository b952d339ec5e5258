// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package challenge implements the "hidden key cookie" web challenge.
//
// Sessions are cookies of the form "<username>|<hex HMAC-SHA256>". The HMAC
// key is hidden in the "ctf_key" text chunk of the site logo. Players who
// find it can forge a session for the admin user and read the flag.
package challenge
