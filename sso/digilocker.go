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

package sso

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rushi-tekdi/ulp-bff/registry"
	"github.com/rushi-tekdi/ulp-bff/wallet"
)

// AuthorizeURL builds the Wallet authorization URL for the given account kind.
func (s *Service) AuthorizeURL(kind wallet.AccountKind) string {
	return s.wallet.AuthorizeURL(kind)
}

// WalletRegisterData carries the entity profiles to register after a wallet login
// without an existing account. The Registry owns the entity schemas, so the
// profiles stay dynamic and are forwarded (enriched) as-is.
type WalletRegisterData struct {
	Student map[string]interface{} `json:"student,omitempty"`
	Teacher map[string]interface{} `json:"teacher,omitempty"`
	School  map[string]interface{} `json:"school,omitempty"`
}

func stringField(entity map[string]interface{}, field string) string {
	value, _ := entity[field].(string)
	return value
}

// WalletLogin exchanges a Wallet authorization code for verified claims and resolves the
// matching account. When no account matches, the claims are returned with a NO_FOUND
// discriminator so the caller can drive WalletRegister next. When exactly one account
// matches, the deterministic credentials are derived and a user token is obtained.
func (s *Service) WalletLogin(ctx context.Context, kind wallet.AccountKind, authCode string) Outcome {
	workflowID := newWorkflowID()

	tokenResponse, claims, err := s.wallet.ExchangeCode(ctx, kind, authCode)
	if err != nil {
		return s.done("wallet_login", workflowID, failure(http.StatusUnauthorized, StatusDigilockerTokenBadRequest,
			"Unauthorized", nil))
	}
	if claims.Sub == "" {
		return s.done("wallet_login", workflowID, failure(http.StatusUnauthorized, StatusDigilockerTokenBadRequest,
			"Unauthorized", nil))
	}

	// The claims payload always carries the student-style derived username;
	// the login username below additionally depends on the account kind.
	claimsData := map[string]interface{}{
		"meripehchanid": claims.Sub,
		"name":          claims.GivenName,
		"mobile":        claims.PhoneNumber,
		"dob":           claims.Dob(),
		"username":      wallet.DeriveUsername(claims.GivenName, claims.Dob()),
	}
	username := s.wallet.UsernameFor(kind, *claims)

	records, err := s.registry.Search(ctx, entityFor(kind), map[string]string{registry.FieldExternalLoginID: claims.Sub})
	if err != nil {
		return s.done("wallet_login", workflowID, failure(http.StatusNotImplemented, StatusSearchError,
			"Sunbird RC Search Failed", err.Error()))
	}
	if len(records) != 1 {
		// No account yet (or an ambiguous match): return claims only, the caller drives registration.
		outcome := success(http.StatusOK, StatusDigilockerLoginSuccess, "Digilocker Login Success", claimsData)
		outcome.Digi = json.RawMessage(tokenResponse.Raw)
		outcome.User = UserNoFound
		return s.done("wallet_login", workflowID, outcome)
	}

	userToken, err := s.tokens.UserToken(ctx, username, s.wallet.PasswordFor(username))
	if err != nil {
		return s.done("wallet_login", workflowID, failure(http.StatusUnauthorized, StatusInvalidCredentials,
			err.Error(), nil))
	}
	outcome := success(http.StatusOK, StatusDigilockerLoginSuccess, "Digilocker Login Success", claimsData)
	outcome.Digi = json.RawMessage(tokenResponse.Raw)
	outcome.User = UserFound
	outcome.UserData = records
	outcome.Token = userToken.AccessToken
	return s.done("wallet_login", workflowID, outcome)
}

// WalletRegister provisions the accounts for a wallet identity that logged in without one.
// The ewallet kind registers or updates a student record; the portal kind creates a teacher
// and a school record, each with its own DID. Later step failures do not roll back earlier
// creates; the deterministic credentials make a replay converge instead of diverge.
func (s *Service) WalletRegister(ctx context.Context, kind wallet.AccountKind, userdata WalletRegisterData, externalSubjectID string) Outcome {
	workflowID := newWorkflowID()

	if kind == wallet.AccountEwallet {
		if userdata.Student == nil {
			return s.done("wallet_register", workflowID, InvalidRequest("student data is required"))
		}
	} else if userdata.Teacher == nil || userdata.School == nil {
		return s.done("wallet_register", workflowID, InvalidRequest("teacher and school data are required"))
	}

	clientToken, err := s.tokens.ClientToken(ctx)
	if err != nil {
		return s.done("wallet_register", workflowID, failure(http.StatusUnauthorized, StatusClientTokenError,
			"Bad Request for Keycloak Client Token", err.Error()))
	}

	username := wallet.DeriveTeacherUsername(externalSubjectID)
	if kind == wallet.AccountEwallet {
		username = stringField(userdata.Student, "username")
	}
	password := s.wallet.PasswordFor(username)

	if err := s.tokens.CreateUser(ctx, clientToken.AccessToken, username, password); err != nil {
		return s.done("wallet_register", workflowID, failure(http.StatusBadRequest, StatusKeycloakRegisterDuplicate,
			"User Already Registered in Keycloak", err.Error()))
	}

	if kind == wallet.AccountEwallet {
		if outcome := s.registerWalletStudent(ctx, userdata.Student); outcome != nil {
			return s.done("wallet_register", workflowID, *outcome)
		}
	} else {
		if outcome := s.registerWalletTeacherAndSchool(ctx, userdata, username); outcome != nil {
			return s.done("wallet_register", workflowID, *outcome)
		}
	}

	userToken, err := s.tokens.UserToken(ctx, username, password)
	if err != nil {
		return s.done("wallet_register", workflowID, failure(http.StatusUnauthorized, StatusInvalidCredentials,
			err.Error(), nil))
	}
	outcome := success(http.StatusOK, StatusDigilockerLoginSuccess, "Digilocker Login Success", nil)
	outcome.User = UserFound
	outcome.UserData = userdata
	outcome.Token = userToken.AccessToken
	return s.done("wallet_register", workflowID, outcome)
}

// registerWalletStudent creates or enriches the student record. A nil return means success.
func (s *Service) registerWalletStudent(ctx context.Context, student map[string]interface{}) *Outcome {
	records, err := s.registry.Search(ctx, registry.EntityStudent, map[string]string{
		registry.FieldStudentName: stringField(student, "studentName"),
		registry.FieldDob:         stringField(student, "dob"),
	})
	if err != nil {
		outcome := failure(http.StatusNotImplemented, StatusSearchError, "Sunbird RC Student Search Failed", err.Error())
		return &outcome
	}
	switch len(records) {
	case 0:
		ack, err := s.registry.Invite(ctx, registry.EntityStudent, student)
		if err != nil {
			outcome := failure(http.StatusBadRequest, StatusRegisterError, "Sunbird RC Student Registration Failed", err.Error())
			return &outcome
		}
		if !ack.Successful() {
			outcome := failure(http.StatusBadRequest, StatusRegisterDuplicate, "Student Already Registered in Sunbird RC", json.RawMessage(ack.Raw))
			return &outcome
		}
	case 1:
		ack, err := s.registry.Update(ctx, registry.EntityStudent, records[0].Osid(), registry.StudentUpdate{
			ExternalLoginID: stringField(student, "meripehchanLoginId"),
			AadhaarID:       stringField(student, "aadhaarID"),
			SchoolName:      stringField(student, "schoolName"),
			StudentSchoolID: stringField(student, "studentSchoolID"),
			PhoneNo:         stringField(student, "phoneNo"),
			Grade:           stringField(student, "grade"),
			Username:        stringField(student, "username"),
		})
		if err != nil {
			outcome := failure(http.StatusBadRequest, StatusUpdateError, "Sunbird RC Student Update Failed", err.Error())
			return &outcome
		}
		if !ack.Successful() {
			outcome := failure(http.StatusBadRequest, StatusUpdateError, "Sunbird RC Student Update Failed", json.RawMessage(ack.Raw))
			return &outcome
		}
	default:
		// Multiple matches for a unique student: never silently update one of them.
		outcome := failure(http.StatusBadRequest, StatusUpdateError, "Sunbird RC Student Update Failed", nil)
		return &outcome
	}
	return nil
}

// registerWalletTeacherAndSchool chains the teacher and school creates of the portal flow.
// A nil return means success. There is no rollback: a failing school create leaves the
// teacher record in place.
func (s *Service) registerWalletTeacherAndSchool(ctx context.Context, userdata WalletRegisterData, username string) *Outcome {
	teacherDid, err := s.dids.Generate(ctx, stringField(userdata.Teacher, "meripehchanLoginId"))
	if err != nil {
		outcome := failure(http.StatusBadRequest, StatusDidGenerateErrorTeacher, "DID Generate Failed for Teacher. Try Again.", err.Error())
		return &outcome
	}
	userdata.Teacher["did"] = teacherDid
	userdata.Teacher["username"] = username

	ack, err := s.registry.Invite(ctx, registry.EntityTeacher, userdata.Teacher)
	if err != nil {
		outcome := failure(http.StatusBadRequest, StatusRegisterError, "Sunbird RC Teacher Registration Failed", err.Error())
		return &outcome
	}
	if !ack.Successful() {
		outcome := failure(http.StatusBadRequest, StatusRegisterDuplicate, "Teacher Already Registered in Sunbird RC", json.RawMessage(ack.Raw))
		return &outcome
	}

	schoolDid, err := s.dids.Generate(ctx, stringField(userdata.School, "udiseCode"))
	if err != nil {
		outcome := failure(http.StatusBadRequest, StatusDidGenerateErrorSchool, "DID Generate Failed for School. Try Again.", err.Error())
		return &outcome
	}
	userdata.School["did"] = schoolDid

	ack, err = s.registry.Invite(ctx, registry.EntitySchool, userdata.School)
	if err != nil {
		outcome := failure(http.StatusBadRequest, StatusRegisterError, "Sunbird RC SchoolDetail Registration Failed", err.Error())
		return &outcome
	}
	if !ack.Successful() {
		outcome := failure(http.StatusBadRequest, StatusRegisterDuplicate, "SchoolDetail Already Registered in Sunbird RC", json.RawMessage(ack.Raw))
		return &outcome
	}
	return nil
}
