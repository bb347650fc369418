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

// Package v1 exposes the SSO workflows as the versioned HTTP API.
package v1

import (
	"bytes"
	"embed"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/santhosh-tekuri/jsonschema"

	"github.com/rushi-tekdi/ulp-bff/core"
	"github.com/rushi-tekdi/ulp-bff/school"
	"github.com/rushi-tekdi/ulp-bff/sso"
	"github.com/rushi-tekdi/ulp-bff/wallet"
)

//go:embed *.json
var jsonSchemaFiles embed.FS

var registerStudentSchema *jsonschema.Schema
var walletRegisterSchema *jsonschema.Schema

func init() {
	registerStudentSchema = mustCompileSchema("register-student-schema.json", "https://ulp.tekdi.net/schemas/register-student.json")
	walletRegisterSchema = mustCompileSchema("digilocker-register-schema.json", "https://ulp.tekdi.net/schemas/digilocker-register.json")
}

func mustCompileSchema(filename string, schemaURL string) *jsonschema.Schema {
	data, err := jsonSchemaFiles.ReadFile(filename)
	if err != nil {
		panic(err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(schemaURL)
}

// Response is the envelope every workflow endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Result  interface{} `json:"result"`

	Digi     interface{} `json:"digi,omitempty"`
	User     string      `json:"user,omitempty"`
	UserData interface{} `json:"userData,omitempty"`
	Token    string      `json:"token,omitempty"`
}

// Wrapper implements the SSO API as an echo router.
type Wrapper struct {
	SSO *sso.Service
}

// Routes registers the handlers on the echo router.
func (w *Wrapper) Routes(router core.EchoRouter) {
	router.POST("/v1/sso/student/register", w.RegisterStudent, operationID("RegisterStudent"))
	router.POST("/v1/sso/student/login", w.LoginStudent, operationID("LoginStudent"))
	router.GET("/v1/sso/student/getdid/:studentid", w.GetDID, operationID("GetDID"))
	router.GET("/v1/sso/student/credentials", w.Credentials, operationID("Credentials"))
	router.POST("/v1/sso/student/credentials/render", w.RenderCredentials, operationID("RenderCredentials"))
	router.POST("/v1/sso/student/credentials/render/pdf", w.RenderCredentialsPDF, operationID("RenderCredentialsPDF"))
	router.POST("/v1/sso/student/credentials/search", w.CredentialsSearch, operationID("CredentialsSearch"))
	router.GET("/v1/sso/student/credentials/schema/:id", w.CredentialsSchema, operationID("CredentialsSchema"))
	router.GET("/v1/sso/student/credentials/schema/json/:id", w.CredentialsSchemaJSON, operationID("CredentialsSchemaJSON"))
	router.GET("/v1/sso/student/credentials/rendertemplate/:id", w.RenderTemplate, operationID("RenderTemplate"))
	router.GET("/v1/sso/student/credentials/rendertemplateschema/:id", w.RenderTemplateSchema, operationID("RenderTemplateSchema"))

	router.GET("/v1/sso/digilocker/authorize/:digiacc", w.DigilockerAuthorize, operationID("DigilockerAuthorize"))
	router.POST("/v1/sso/digilocker/token", w.DigilockerToken, operationID("DigilockerToken"))
	router.POST("/v1/sso/digilocker/register", w.DigilockerRegister, operationID("DigilockerRegister"))

	router.GET("/v1/sso/userdata/:digiacc", w.UserData, operationID("UserData"))
	router.GET("/v1/sso/schooldata/:udise", w.SchoolData, operationID("SchoolData"))
	router.POST("/v1/sso/studentdetail", w.StudentDetail, operationID("StudentDetail"))

	router.GET("/v1/sso/udise/verify/:udiseid", w.UdiseVerify, operationID("UdiseVerify"))
	router.GET("/v1/sso/udise/schoollist", w.SchoolList, operationID("SchoolList"))
	router.GET("/v1/sso/udise/schoollist/:udise", w.SchoolListUdise, operationID("SchoolListUdise"))
}

func operationID(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Set(core.OperationIDContextKey, name)
			return next(ctx)
		}
	}
}

func respond(ctx echo.Context, outcome sso.Outcome) error {
	return ctx.JSON(outcome.Code, Response{
		Success:  outcome.Success,
		Status:   outcome.Status,
		Message:  outcome.Message,
		Result:   outcome.Result,
		Digi:     outcome.Digi,
		User:     outcome.User,
		UserData: outcome.UserData,
		Token:    outcome.Token,
	})
}

// bearerToken extracts the token from the Authorization header, with or without the Bearer prefix.
func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// RegisterStudent handles POST /v1/sso/student/register
func (w *Wrapper) RegisterStudent(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return respond(ctx, sso.InvalidRequest("unable to read request body"))
	}
	if err := registerStudentSchema.Validate(bytes.NewReader(body)); err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	var request sso.RegisterRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	return respond(ctx, w.SSO.RegisterStudent(ctx.Request().Context(), request))
}

// LoginStudent handles POST /v1/sso/student/login
func (w *Wrapper) LoginStudent(ctx echo.Context) error {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	if request.Username == "" || request.Password == "" {
		return respond(ctx, sso.InvalidRequest("username and password are required"))
	}
	return respond(ctx, w.SSO.Login(ctx.Request().Context(), request.Username, request.Password))
}

// GetDID handles GET /v1/sso/student/getdid/:studentid
func (w *Wrapper) GetDID(ctx echo.Context) error {
	return respond(ctx, w.SSO.GetDID(ctx.Request().Context(), ctx.Param("studentid")))
}

// Credentials handles GET /v1/sso/student/credentials
func (w *Wrapper) Credentials(ctx echo.Context) error {
	return respond(ctx, w.SSO.Credentials(ctx.Request().Context(), bearerToken(ctx)))
}

// RenderCredentials handles POST /v1/sso/student/credentials/render
func (w *Wrapper) RenderCredentials(ctx echo.Context) error {
	var payload map[string]interface{}
	if err := ctx.Bind(&payload); err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	return respond(ctx, w.SSO.RenderCredentialsHTML(ctx.Request().Context(), bearerToken(ctx), payload))
}

// RenderCredentialsPDF handles POST /v1/sso/student/credentials/render/pdf.
// A successful render is written as the PDF document itself, not as the JSON envelope.
func (w *Wrapper) RenderCredentialsPDF(ctx echo.Context) error {
	var payload map[string]interface{}
	if err := ctx.Bind(&payload); err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	outcome := w.SSO.RenderCredentialsPDF(ctx.Request().Context(), bearerToken(ctx), payload)
	if !outcome.Success {
		return respond(ctx, outcome)
	}
	document, ok := outcome.Result.([]byte)
	if !ok {
		return respond(ctx, outcome)
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="credentials.pdf"`)
	return ctx.Blob(outcome.Code, "application/pdf", document)
}

// CredentialsSearch handles POST /v1/sso/student/credentials/search
func (w *Wrapper) CredentialsSearch(ctx echo.Context) error {
	var request struct {
		SubjectID string `json:"subjectId"`
	}
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	if request.SubjectID == "" {
		return respond(ctx, sso.InvalidRequest("subjectId is required"))
	}
	return respond(ctx, w.SSO.CredentialsSearch(ctx.Request().Context(), bearerToken(ctx), request.SubjectID))
}

// CredentialsSchema handles GET /v1/sso/student/credentials/schema/:id
func (w *Wrapper) CredentialsSchema(ctx echo.Context) error {
	return respond(ctx, w.SSO.CredentialsSchema(ctx.Request().Context(), ctx.Param("id")))
}

// CredentialsSchemaJSON handles GET /v1/sso/student/credentials/schema/json/:id
func (w *Wrapper) CredentialsSchemaJSON(ctx echo.Context) error {
	return respond(ctx, w.SSO.CredentialsSchemaJSON(ctx.Request().Context(), ctx.Param("id")))
}

// RenderTemplate handles GET /v1/sso/student/credentials/rendertemplate/:id
func (w *Wrapper) RenderTemplate(ctx echo.Context) error {
	return respond(ctx, w.SSO.RenderTemplate(ctx.Request().Context(), ctx.Param("id")))
}

// RenderTemplateSchema handles GET /v1/sso/student/credentials/rendertemplateschema/:id
func (w *Wrapper) RenderTemplateSchema(ctx echo.Context) error {
	return respond(ctx, w.SSO.RenderTemplateSchema(ctx.Request().Context(), ctx.Param("id")))
}

// DigilockerAuthorize handles GET /v1/sso/digilocker/authorize/:digiacc
func (w *Wrapper) DigilockerAuthorize(ctx echo.Context) error {
	kind, err := wallet.ParseAccountKind(ctx.Param("digiacc"))
	if err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	return ctx.JSON(http.StatusOK, map[string]string{
		"digiauthurl": w.SSO.AuthorizeURL(kind),
	})
}

// DigilockerToken handles POST /v1/sso/digilocker/token
func (w *Wrapper) DigilockerToken(ctx echo.Context) error {
	var request struct {
		DigiAcc  string `json:"digiacc"`
		AuthCode string `json:"auth_code"`
	}
	if err := ctx.Bind(&request); err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	kind, err := wallet.ParseAccountKind(request.DigiAcc)
	if err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	if request.AuthCode == "" {
		return respond(ctx, sso.InvalidRequest("auth_code is required"))
	}
	return respond(ctx, w.SSO.WalletLogin(ctx.Request().Context(), kind, request.AuthCode))
}

// DigilockerRegister handles POST /v1/sso/digilocker/register
func (w *Wrapper) DigilockerRegister(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return respond(ctx, sso.InvalidRequest("unable to read request body"))
	}
	if err := walletRegisterSchema.Validate(bytes.NewReader(body)); err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	var request struct {
		DigiAcc  string                 `json:"digiacc"`
		UserData sso.WalletRegisterData `json:"userdata"`
		DigiMpID string                 `json:"digimpid"`
	}
	if err := json.Unmarshal(body, &request); err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	kind, err := wallet.ParseAccountKind(request.DigiAcc)
	if err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	return respond(ctx, w.SSO.WalletRegister(ctx.Request().Context(), kind, request.UserData, request.DigiMpID))
}

// UserData handles GET /v1/sso/userdata/:digiacc
func (w *Wrapper) UserData(ctx echo.Context) error {
	kind, err := wallet.ParseAccountKind(ctx.Param("digiacc"))
	if err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	return respond(ctx, w.SSO.UserData(ctx.Request().Context(), bearerToken(ctx), kind))
}

// SchoolData handles GET /v1/sso/schooldata/:udise
func (w *Wrapper) SchoolData(ctx echo.Context) error {
	return respond(ctx, w.SSO.SchoolData(ctx.Request().Context(), bearerToken(ctx), ctx.Param("udise")))
}

// StudentDetail handles POST /v1/sso/studentdetail
func (w *Wrapper) StudentDetail(ctx echo.Context) error {
	var payload map[string]interface{}
	if err := ctx.Bind(&payload); err != nil {
		return respond(ctx, sso.InvalidRequest(err.Error()))
	}
	return respond(ctx, w.SSO.StudentDetail(ctx.Request().Context(), payload))
}

// UdiseVerify handles GET /v1/sso/udise/verify/:udiseid
func (w *Wrapper) UdiseVerify(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, school.Verify(ctx.Param("udiseid")))
}

// SchoolList handles GET /v1/sso/udise/schoollist
func (w *Wrapper) SchoolList(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, school.List())
}

// SchoolListUdise handles GET /v1/sso/udise/schoollist/:udise
func (w *Wrapper) SchoolListUdise(ctx echo.Context) error {
	entry, found := school.FindByUdise(ctx.Param("udise"))
	if !found {
		return ctx.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"status":  "no_found",
		})
	}
	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"status":  "found",
		"data":    entry,
	})
}
