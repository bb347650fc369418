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

// Package pdf renders HTML documents to PDF through a headless Chrome instance.
package pdf

import (
	"context"
	"errors"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/rushi-tekdi/ulp-bff/core"
	"github.com/rushi-tekdi/ulp-bff/pdf/log"
)

// ModuleName is the name of this engine.
const ModuleName = "PDF"

// ErrConvert is returned when the browser could not produce a PDF.
var ErrConvert = errors.New("pdf: conversion failed")

// A4 paper size in inches, matching the credential rendering templates.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// Config holds the configuration for the PDF engine.
type Config struct {
	// ExecPath is the Chrome/Chromium binary to launch. Empty means chromedp's default lookup.
	ExecPath string `koanf:"execpath"`
	// Timeout bounds a single conversion, browser startup included.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultConfig returns the default configuration for the PDF engine.
func DefaultConfig() Config {
	return Config{
		Timeout: 60 * time.Second,
	}
}

// Converter is the engine that converts rendered credential HTML into PDF documents.
type Converter struct {
	config Config
}

// New creates a new PDF converter engine with default configuration.
func New() *Converter {
	return &Converter{config: DefaultConfig()}
}

func (c *Converter) Name() string {
	return ModuleName
}

func (c *Converter) ConfigKey() string {
	return "pdf"
}

func (c *Converter) Config() interface{} {
	return &c.config
}

func (c *Converter) Configure(_ core.ServerConfig) error {
	if c.config.Timeout <= 0 {
		return errors.New("pdf.timeout must be positive")
	}
	return nil
}

// Convert loads the given HTML into a fresh headless browser tab and prints it to PDF.
// Each call launches its own browser; conversions are rare enough that keeping a
// browser pool alive is not worth the resident memory.
func (c *Converter) Convert(ctx context.Context, html []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	options := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-gpu", true),
	)
	if c.config.ExecPath != "" {
		options = append(options, chromedp.ExecPath(c.config.ExecPath))
	}
	allocatorCtx, cancelAllocator := chromedp.NewExecAllocator(ctx, options...)
	defer cancelAllocator()
	browserCtx, cancelBrowser := chromedp.NewContext(allocatorCtx)
	defer cancelBrowser()

	var document []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				Do(ctx)
			if err != nil {
				return err
			}
			document = data
			return nil
		}),
	)
	if err != nil {
		log.Logger().WithError(err).Error("HTML to PDF conversion failed")
		return nil, errors.Join(ErrConvert, err)
	}
	log.Logger().WithField("size", len(document)).Debug("Converted HTML to PDF")
	return document, nil
}
