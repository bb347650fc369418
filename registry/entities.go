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

package registry

// StudentDetail is the invite payload for a student record created during registration.
type StudentDetail struct {
	Did             string `json:"did,omitempty"`
	AadhaarID       string `json:"aadhaarID,omitempty"`
	StudentName     string `json:"studentName,omitempty"`
	SchoolName      string `json:"schoolName,omitempty"`
	SchoolID        string `json:"schoolID,omitempty"`
	StudentSchoolID string `json:"studentSchoolID,omitempty"`
	PhoneNo         string `json:"phoneNo,omitempty"`
	Dob             string `json:"dob,omitempty"`
	Grade           string `json:"grade,omitempty"`
	Username        string `json:"username,omitempty"`
	ExternalLoginID string `json:"meripehchanLoginId,omitempty"`
}

// StudentUpdate is the partial update applied when a wallet-linked student record already exists.
type StudentUpdate struct {
	ExternalLoginID string `json:"meripehchanLoginId"`
	AadhaarID       string `json:"aadhaarID"`
	SchoolName      string `json:"schoolName"`
	StudentSchoolID string `json:"studentSchoolID"`
	PhoneNo         string `json:"phoneNo"`
	Grade           string `json:"grade"`
	Username        string `json:"username"`
}

