// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// EOQForm holds the raw, unvalidated EOQ form fields exactly as typed.
type EOQForm struct {
	OrderCost   string
	HoldingCost string
	ProductName string
	FilePath    string
}

// ROPForm holds the raw, unvalidated ROP form fields exactly as typed.
// ServiceLevel is entered in percent.
type ROPForm struct {
	LeadTime     string
	ServiceLevel string
	ProductName  string
	FilePath     string
}

// EOQParams are validated EOQ inputs ready to be sent as multipart fields.
type EOQParams struct {
	OrderCost   float64
	HoldingCost float64
	ProductName string
	FilePath    string
}

// ROPParams are validated ROP inputs. ServiceLevel is in percent.
type ROPParams struct {
	LeadTime     int
	ServiceLevel float64
	ProductName  string
	FilePath     string
}

// ServiceLevelFraction converts the percent entered by the user into the
// fraction expected by the backend (95 -> 0.95), rounded to four decimals
// so that 99.9 is sent as 0.999 and not as 0.9990000000000001.
func (p ROPParams) ServiceLevelFraction() float64 {
	return decimal.NewFromFloat(p.ServiceLevel).Shift(-2).Round(4).InexactFloat64()
}

// LoginForm holds the raw login fields.
type LoginForm struct {
	Email    string
	Password string
}

// RegisterForm holds the raw registration fields. ConfirmPassword is checked
// locally and never sent.
type RegisterForm struct {
	FullName        string
	Email           string
	Company         string
	Password        string
	ConfirmPassword string
}

// Request converts the form into the registration body. An empty company is
// omitted.
func (f RegisterForm) Request() RegisterRequest {
	req := RegisterRequest{
		Email:    f.Email,
		Password: f.Password,
		FullName: f.FullName,
	}
	if f.Company != "" {
		company := f.Company
		req.Company = &company
	}
	return req
}
