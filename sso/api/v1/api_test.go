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

package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rushi-tekdi/ulp-bff/idp"
	"github.com/rushi-tekdi/ulp-bff/registry"
	"github.com/rushi-tekdi/ulp-bff/sso"
	"github.com/rushi-tekdi/ulp-bff/wallet"
)

type testContext struct {
	wrapper  *Wrapper
	tokens   *sso.MockTokenBroker
	dids     *sso.MockDidIssuer
	registry *sso.MockRegistry
	wallet   *sso.MockWalletLinker
}

func newTestContext(t *testing.T) testContext {
	ctrl := gomock.NewController(t)
	tokens := sso.NewMockTokenBroker(ctrl)
	dids := sso.NewMockDidIssuer(ctrl)
	reg := sso.NewMockRegistry(ctrl)
	credentials := sso.NewMockCredentialService(ctrl)
	walletLinker := sso.NewMockWalletLinker(ctrl)
	pdfConverter := sso.NewMockPDFConverter(ctrl)
	service := sso.NewService(tokens, dids, reg, credentials, walletLinker, pdfConverter)
	return testContext{
		wrapper:  &Wrapper{SSO: service},
		tokens:   tokens,
		dids:     dids,
		registry: reg,
		wallet:   walletLinker,
	}
}

func newRequestContext(method string, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	recorder := httptest.NewRecorder()
	return echo.New().NewContext(request, recorder), recorder
}

func parseResponse(t *testing.T, recorder *httptest.ResponseRecorder) Response {
	var response Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func TestWrapper_RegisterStudent(t *testing.T) {
	t.Run("error - payload rejected by schema", func(t *testing.T) {
		ctx := newTestContext(t)
		echoCtx, recorder := newRequestContext(http.MethodPost, "/v1/sso/student/register", `{"studentName":"Test Student"}`)

		require.NoError(t, ctx.wrapper.RegisterStudent(echoCtx))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, sso.StatusInvalidRequest, parseResponse(t, recorder).Status)
	})
	t.Run("valid payload reaches the workflow", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx.tokens.EXPECT().ClientToken(gomock.Any()).Return(nil, errors.New("upstream down"))
		echoCtx, recorder := newRequestContext(http.MethodPost, "/v1/sso/student/register",
			`{"studentId":"1234567890","studentName":"Test Student"}`)

		require.NoError(t, ctx.wrapper.RegisterStudent(echoCtx))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, sso.StatusClientTokenError, parseResponse(t, recorder).Status)
	})
}

func TestWrapper_LoginStudent(t *testing.T) {
	t.Run("error - missing password", func(t *testing.T) {
		ctx := newTestContext(t)
		echoCtx, recorder := newRequestContext(http.MethodPost, "/v1/sso/student/login", `{"username":"1234567890"}`)

		require.NoError(t, ctx.wrapper.LoginStudent(echoCtx))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, sso.StatusInvalidRequest, parseResponse(t, recorder).Status)
	})
	t.Run("ok", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx.tokens.EXPECT().UserToken(gomock.Any(), "1234567890", "1234").Return(&idp.TokenSet{AccessToken: "user-token"}, nil)
		ctx.registry.EXPECT().Search(gomock.Any(), registry.EntityStudent, gomock.Any()).
			Return([]registry.Record{{"osid": "1-abc"}}, nil)
		echoCtx, recorder := newRequestContext(http.MethodPost, "/v1/sso/student/login", `{"username":"1234567890","password":"1234"}`)

		require.NoError(t, ctx.wrapper.LoginStudent(echoCtx))

		assert.Equal(t, http.StatusOK, recorder.Code)
		response := parseResponse(t, recorder)
		assert.True(t, response.Success)
		assert.Equal(t, sso.StatusLoginSuccess, response.Status)
	})
}

func TestWrapper_Credentials(t *testing.T) {
	t.Run("bearer token is stripped from the header", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx.tokens.EXPECT().Introspect(gomock.Any(), "opaque-token").Return(nil, errors.New("401"))
		echoCtx, recorder := newRequestContext(http.MethodGet, "/v1/sso/student/credentials", "")
		echoCtx.Request().Header.Set(echo.HeaderAuthorization, "Bearer opaque-token")

		require.NoError(t, ctx.wrapper.Credentials(echoCtx))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, sso.StatusStudentTokenBadRequest, parseResponse(t, recorder).Status)
	})
}

func TestWrapper_DigilockerAuthorize(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx.wallet.EXPECT().AuthorizeURL(wallet.AccountEwallet).Return("https://wallet.example.com/authorize?client_id=abc")
		echoCtx, recorder := newRequestContext(http.MethodGet, "/v1/sso/digilocker/authorize/ewallet", "")
		echoCtx.SetParamNames("digiacc")
		echoCtx.SetParamValues("ewallet")

		require.NoError(t, ctx.wrapper.DigilockerAuthorize(echoCtx))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"digiauthurl":"https://wallet.example.com/authorize?client_id=abc"}`, recorder.Body.String())
	})
	t.Run("error - unknown account kind", func(t *testing.T) {
		ctx := newTestContext(t)
		echoCtx, recorder := newRequestContext(http.MethodGet, "/v1/sso/digilocker/authorize/other", "")
		echoCtx.SetParamNames("digiacc")
		echoCtx.SetParamValues("other")

		require.NoError(t, ctx.wrapper.DigilockerAuthorize(echoCtx))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestWrapper_DigilockerToken(t *testing.T) {
	t.Run("error - missing auth code", func(t *testing.T) {
		ctx := newTestContext(t)
		echoCtx, recorder := newRequestContext(http.MethodPost, "/v1/sso/digilocker/token", `{"digiacc":"ewallet"}`)

		require.NoError(t, ctx.wrapper.DigilockerToken(echoCtx))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, sso.StatusInvalidRequest, parseResponse(t, recorder).Status)
	})
	t.Run("failed exchange answers with the workflow envelope", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx.wallet.EXPECT().ExchangeCode(gomock.Any(), wallet.AccountEwallet, "bad-code").Return(nil, nil, errors.New("invalid_grant"))
		echoCtx, recorder := newRequestContext(http.MethodPost, "/v1/sso/digilocker/token", `{"digiacc":"ewallet","auth_code":"bad-code"}`)

		require.NoError(t, ctx.wrapper.DigilockerToken(echoCtx))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, sso.StatusDigilockerTokenBadRequest, parseResponse(t, recorder).Status)
	})
}

func TestWrapper_DigilockerRegister(t *testing.T) {
	t.Run("error - payload rejected by schema", func(t *testing.T) {
		ctx := newTestContext(t)
		echoCtx, recorder := newRequestContext(http.MethodPost, "/v1/sso/digilocker/register", `{"digiacc":"ewallet"}`)

		require.NoError(t, ctx.wrapper.DigilockerRegister(echoCtx))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, sso.StatusInvalidRequest, parseResponse(t, recorder).Status)
	})
	t.Run("error - portal payload without teacher and school", func(t *testing.T) {
		ctx := newTestContext(t)
		echoCtx, recorder := newRequestContext(http.MethodPost, "/v1/sso/digilocker/register",
			`{"digiacc":"portal","digimpid":"MP999","userdata":{}}`)

		require.NoError(t, ctx.wrapper.DigilockerRegister(echoCtx))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, sso.StatusInvalidRequest, parseResponse(t, recorder).Status)
	})
	t.Run("error - ewallet payload without student", func(t *testing.T) {
		ctx := newTestContext(t)
		echoCtx, recorder := newRequestContext(http.MethodPost, "/v1/sso/digilocker/register",
			`{"digiacc":"ewallet","digimpid":"MP123","userdata":{"teacher":{}}}`)

		require.NoError(t, ctx.wrapper.DigilockerRegister(echoCtx))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, sso.StatusInvalidRequest, parseResponse(t, recorder).Status)
	})
	t.Run("error - account kind outside the enum", func(t *testing.T) {
		ctx := newTestContext(t)
		echoCtx, recorder := newRequestContext(http.MethodPost, "/v1/sso/digilocker/register",
			`{"digiacc":"other","digimpid":"MP123","userdata":{}}`)

		require.NoError(t, ctx.wrapper.DigilockerRegister(echoCtx))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, sso.StatusInvalidRequest, parseResponse(t, recorder).Status)
	})
}

func TestWrapper_UdiseVerify(t *testing.T) {
	ctx := newTestContext(t)
	echoCtx, recorder := newRequestContext(http.MethodGet, "/v1/sso/udise/verify/16010100101", "")
	echoCtx.SetParamNames("udiseid")
	echoCtx.SetParamValues("16010100101")

	require.NoError(t, ctx.wrapper.UdiseVerify(echoCtx))

	assert.Equal(t, http.StatusOK, recorder.Code)
	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &profile))
	assert.Equal(t, "SWAMI DYALANANDA J.B SCHOOL 16010100101", profile["schoolName"])
}

func TestWrapper_SchoolList(t *testing.T) {
	ctx := newTestContext(t)
	echoCtx, recorder := newRequestContext(http.MethodGet, "/v1/sso/udise/schoollist", "")

	require.NoError(t, ctx.wrapper.SchoolList(echoCtx))

	assert.Equal(t, http.StatusOK, recorder.Code)
	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &entries))
	assert.NotEmpty(t, entries)
}

func TestWrapper_SchoolListUdise(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctx := newTestContext(t)
		echoCtx, recorder := newRequestContext(http.MethodGet, "/v1/sso/udise/schoollist/16010100101", "")
		echoCtx.SetParamNames("udise")
		echoCtx.SetParamValues("16010100101")

		require.NoError(t, ctx.wrapper.SchoolListUdise(echoCtx))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"found"`)
	})
	t.Run("not found", func(t *testing.T) {
		ctx := newTestContext(t)
		echoCtx, recorder := newRequestContext(http.MethodGet, "/v1/sso/udise/schoollist/00000000000", "")
		echoCtx.SetParamNames("udise")
		echoCtx.SetParamValues("00000000000")

		require.NoError(t, ctx.wrapper.SchoolListUdise(echoCtx))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"no_found"`)
	})
}
