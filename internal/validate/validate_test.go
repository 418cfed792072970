package validate

import (
	"errors"
	"testing"

	"erpctl/internal/erp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() erp.CustomerPayload {
	return erp.CustomerPayload{
		ClientName:    "Sharma Traders",
		Email:         "accounts@sharmatraders.in",
		MobileNo:      "9876543210",
		Address:       "14 MG Road",
		Pincode:       "560001",
		Country:       "India",
		State:         "Karnataka",
		City:          "Bengaluru",
		PANNo:         "ABCDE1234F",
		GSTNo:         "29ABCDE1234F1Z5",
		AadhaarNumber: "123412341234",
	}
}

func TestValidCustomerPasses(t *testing.T) {
	assert.NoError(t, Struct(validCustomer()))
}

func TestGSTINFormat(t *testing.T) {
	tests := []struct {
		name  string
		gstin string
		ok    bool
	}{
		{"valid", "29ABCDE1234F1Z5", true},
		{"lowercase accepted", "29abcde1234f1z5", true},
		{"too short", "29ABCDE1234F1Z", false},
		{"too long", "29ABCDE1234F1Z55", false},
		{"missing Z marker", "29ABCDE1234F1X5", false},
		{"letters where state code goes", "XXABCDE1234F1Z5", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validCustomer()
			payload.GSTNo = tt.gstin
			err := Struct(payload)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var fields FieldErrors
			require.ErrorAs(t, err, &fields)
			assert.Contains(t, fields, "GSTNo")
		})
	}
}

func TestIdentifierFormats(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*erp.CustomerPayload)
		field  string
	}{
		{"pan wrong shape", func(p *erp.CustomerPayload) { p.PANNo = "1234ABCDEF" }, "PANNo"},
		{"pan too short", func(p *erp.CustomerPayload) { p.PANNo = "ABCDE123F" }, "PANNo"},
		{"aadhaar with dashes", func(p *erp.CustomerPayload) { p.AadhaarNumber = "1234-1234-1234" }, "AadhaarNumber"},
		{"aadhaar too short", func(p *erp.CustomerPayload) { p.AadhaarNumber = "12341234123" }, "AadhaarNumber"},
		{"pincode five digits", func(p *erp.CustomerPayload) { p.Pincode = "56000" }, "Pincode"},
		{"pincode alpha", func(p *erp.CustomerPayload) { p.Pincode = "56OO01" }, "Pincode"},
		{"mobile nine digits", func(p *erp.CustomerPayload) { p.MobileNo = "987654321" }, "MobileNo"},
		{"mobile with country code", func(p *erp.CustomerPayload) { p.MobileNo = "+919876543210" }, "MobileNo"},
		{"bad email", func(p *erp.CustomerPayload) { p.Email = "not-an-email" }, "Email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validCustomer()
			tt.mutate(&payload)
			err := Struct(payload)
			require.Error(t, err)

			var fields FieldErrors
			require.ErrorAs(t, err, &fields)
			assert.Contains(t, fields, tt.field)
			assert.Len(t, fields, 1)
		})
	}
}

func TestRequiredFieldsCollected(t *testing.T) {
	err := Struct(erp.VendorPayload{})
	require.Error(t, err)

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	for _, field := range []string{"Name", "GSTNo", "Address", "PhoneNumber"} {
		assert.Equal(t, "is required", fields[field])
	}
}

func TestHSNPayloadBounds(t *testing.T) {
	assert.NoError(t, Struct(erp.HSNPayload{HSNNo: "7113", GSTRate: 3}))

	err := Struct(erp.HSNPayload{HSNNo: "7113A", GSTRate: 120})
	require.Error(t, err)

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "HSNNo")
	assert.Contains(t, fields, "GSTRate")
}

func TestErrorMessageIsStableAndSorted(t *testing.T) {
	payload := validCustomer()
	payload.PANNo = "nope"
	payload.AadhaarNumber = "nope"
	err := Struct(payload)
	require.Error(t, err)

	assert.Equal(t,
		"AadhaarNumber: must be a valid 12-digit Aadhaar number; PANNo: must be a valid PAN number (e.g. ABCDE1234F)",
		err.Error())
}

func TestNonStructInput(t *testing.T) {
	err := Struct("not a struct")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
