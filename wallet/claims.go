/*
 * ULP BFF
 * Copyright (C) 2023 ULP community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package wallet

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
)

// Claims are the verified personal attributes taken from the Wallet's identity token.
type Claims struct {
	// Sub is the stable external subject id of the Wallet account.
	Sub string
	// GivenName is the full name as registered with the Wallet.
	GivenName string
	// Birthdate as present in the token, unconverted.
	Birthdate string
	// PhoneNumber as present in the token.
	PhoneNumber string
}

// Dob returns the birthdate converted to DD/MM/YYYY.
func (c Claims) Dob() string {
	return ConvertDate(c.Birthdate)
}

const dateLayout = "02/01/2006"

// ConvertDate takes the first 10 characters of the given date string and normalizes
// them to DD/MM/YYYY. The conversion is idempotent: converting an already converted
// date yields the same value. Unparseable input is returned as-is (first 10 characters).
func ConvertDate(datetime string) string {
	if datetime == "" {
		return ""
	}
	dateString := datetime
	if len(dateString) > 10 {
		dateString = dateString[:10]
	}
	if parsed, err := time.Parse(dateLayout, dateString); err == nil {
		return parsed.Format(dateLayout)
	}
	if parsed, err := time.Parse("2006-01-02", dateString); err == nil {
		return parsed.Format(dateLayout)
	}
	return dateString
}

// DeriveUsername derives the deterministic account username from the Wallet claims:
// the first word of the given name, an @, and the date of birth with slashes removed.
// The same claims always derive the same username.
func DeriveUsername(givenName string, dob string) string {
	firstName := givenName
	if index := strings.IndexByte(firstName, ' '); index >= 0 {
		firstName = firstName[:index]
	}
	return firstName + "@" + strings.ReplaceAll(dob, "/", "")
}

// DeriveTeacherUsername derives the deterministic staff username from the external subject id.
func DeriveTeacherUsername(externalSubjectID string) string {
	return externalSubjectID + "_teacher"
}

// DerivePassword derives the deterministic opaque password for the given username.
// The same username and salt always derive the same password, which makes IdP
// account creation effectively idempotent: duplicate create attempts fail safe.
func DerivePassword(username string, salt string) string {
	sum := md5.Sum([]byte(username + salt))
	return hex.EncodeToString(sum[:])
}
