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

// Package school serves the static school catalog used during onboarding.
// The catalog ships with the binary; the UDISE system of record is not
// queried at runtime.
package school

import (
	_ "embed"
	"encoding/json"
)

//go:embed schools.json
var schoolsFile []byte

var schools []School

func init() {
	if err := json.Unmarshal(schoolsFile, &schools); err != nil {
		panic(err)
	}
}

// School is a single catalog entry.
type School struct {
	UdiseCode    string `json:"udiseCode"`
	SchoolName   string `json:"schoolName"`
	DistrictName string `json:"districtName"`
	BlockName    string `json:"blockName"`
	StateName    string `json:"stateName"`
}

// Profile is the full school profile returned by UDISE verification.
type Profile struct {
	UdiseCode              string `json:"udiseCode"`
	SchoolName             string `json:"schoolName"`
	SchoolCategory         int    `json:"schoolCategory"`
	SchoolManagementCenter int    `json:"schoolManagementCenter"`
	SchoolManagementState  int    `json:"schoolManagementState"`
	SchoolType             int    `json:"schoolType"`
	ClassFrom              int    `json:"classFrom"`
	ClassTo                int    `json:"classTo"`
	StateCode              string `json:"stateCode"`
	StateName              string `json:"stateName"`
	DistrictName           string `json:"districtName"`
	BlockName              string `json:"blockName"`
	LocationType           int    `json:"locationType"`
	HeadOfSchoolMobile     string `json:"headOfSchoolMobile"`
	RespondentMobile       string `json:"respondentMobile"`
	AlternateMobile        string `json:"alternateMobile"`
	SchoolEmail            string `json:"schoolEmail"`
}

// List returns the full school catalog.
func List() []School {
	return schools
}

// FindByUdise returns the catalog entry with the given UDISE code, or false when absent.
func FindByUdise(udise string) (School, bool) {
	for _, s := range schools {
		if s.UdiseCode == udise {
			return s, true
		}
	}
	return School{}, false
}

// Verify returns the school profile for the given UDISE code. The UDISE system
// of record has no public API, so the profile is a fixed stand-in keyed on the
// requested code.
func Verify(udise string) Profile {
	return Profile{
		UdiseCode:              udise,
		SchoolName:             "SWAMI DYALANANDA J.B SCHOOL " + udise,
		SchoolCategory:         1,
		SchoolManagementCenter: 1,
		SchoolManagementState:  11,
		SchoolType:             3,
		ClassFrom:              1,
		ClassTo:                5,
		StateCode:              "16",
		StateName:              "Tripura",
		DistrictName:           "WEST TRIPURA",
		BlockName:              "AGARTALA MUNICIPAL COORPORATION",
		LocationType:           2,
		HeadOfSchoolMobile:     "89******42",
		RespondentMobile:       "88******96",
	}
}
