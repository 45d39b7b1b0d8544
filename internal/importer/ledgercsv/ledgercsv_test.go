package ledgercsv_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaims/remit/internal/importer/ledgercsv"
)

func TestParser_Parse(t *testing.T) {
	input := `Exported 2024-04-01 by HSA portal
Date,Amount,Method,Notes
2024-03-01,45.00,hsa_debit,Copay
2024-03-15,"1,250.00",check,
03/20/2024,12.34,,Pharmacy
Total,1307.34
`

	rows, err := ledgercsv.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 3, rows[0].Line)
	assert.Equal(t, int64(4500), rows[0].Amount)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rows[0].ReimbursedAt)
	require.NotNil(t, rows[0].Method)
	assert.Equal(t, "hsa_debit", *rows[0].Method)
	require.NotNil(t, rows[0].Notes)
	assert.Equal(t, "Copay", *rows[0].Notes)

	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, int64(125000), rows[1].Amount)
	assert.Nil(t, rows[1].Notes)

	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), rows[2].ReimbursedAt)
	assert.Nil(t, rows[2].Method)
	assert.Equal(t, 5, rows[2].Line)
}

func TestParser_Parse_HeaderAliases(t *testing.T) {
	input := "Payment Date,Reimbursement,Memo\n2024-03-01,45.00,Visit\n"

	rows, err := ledgercsv.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(4500), rows[0].Amount)
	require.NotNil(t, rows[0].Notes)
	assert.Equal(t, "Visit", *rows[0].Notes)
}

func TestParser_Parse_EuropeanAmounts(t *testing.T) {
	input := "Date,Amount\n2024-03-01,\"1.250,50\"\n"

	rows, err := ledgercsv.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(125050), rows[0].Amount)
}

func TestParser_Parse_NoHeader(t *testing.T) {
	_, err := ledgercsv.NewParser().Parse(strings.NewReader("just,some,cells\n1,2,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestParser_Parse_BadAmount(t *testing.T) {
	input := "Date,Amount\n2024-03-01,forty five\n"

	_, err := ledgercsv.NewParser().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParser_Parse_RejectsNonPositive(t *testing.T) {
	input := "Date,Amount\n2024-03-01,-45.00\n"

	_, err := ledgercsv.NewParser().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")
}
