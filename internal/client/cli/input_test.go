package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, tty bool, pw func(int) ([]byte, error)) {
	t.Helper()
	oldTTY, oldPW := isTerminal, readPassword
	isTerminal = func(int) bool { return tty }
	if pw != nil {
		readPassword = pw
	}
	t.Cleanup(func() { isTerminal, readPassword = oldTTY, oldPW })
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetDefaultText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetDefaultText(rdr("\n"), "Date", "2024-05-15", &out)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-15", got)
	assert.Contains(t, out.String(), "Date [2024-05-15]")

	got, err = GetDefaultText(rdr("2024-01-01\n"), "Date", "2024-05-15", &out)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetMultiline_CRLFAndEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\r\nb"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetList(t *testing.T) {
	var out bytes.Buffer
	got, err := GetList(rdr(" ibd , , dcf,\n"), "Tags", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"ibd", "dcf"}, got)
}

func TestGetChoice(t *testing.T) {
	var out bytes.Buffer
	got, err := GetChoice(rdr("ghosted\noffer\n"), "Status", models.FirmStatuses, models.FirmResearching, &out)
	require.NoError(t, err)
	assert.Equal(t, models.FirmOffer, got)
	assert.Contains(t, out.String(), `"ghosted" is not one of the options`)

	got, err = GetChoice(rdr("\n"), "Status", models.FirmStatuses, models.FirmResearching, &out)
	require.NoError(t, err)
	assert.Equal(t, models.FirmResearching, got)

	_, err = GetChoice(rdr("nope"), "Status", models.FirmStatuses, models.FirmResearching, &out)
	require.Error(t, err)
}

func TestGetSecret_Piped(t *testing.T) {
	stubTerminal(t, false, func(int) ([]byte, error) {
		t.Fatal("terminal must not be read when stdin is piped")
		return nil, nil
	})

	var out bytes.Buffer
	got, err := GetSecret(rdr("tok\n"), "Token", &out)
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
}

func TestGetSecret_Terminal(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return []byte(" tok \n"), nil })

	var out bytes.Buffer
	got, err := GetSecret(rdr(""), "Token", &out)
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
	assert.Equal(t, "Token: \n", out.String())
}

func TestGetSecret_Error(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return nil, errors.New("boom") })

	var out bytes.Buffer
	_, err := GetSecret(rdr(""), "Token", &out)
	require.Error(t, err)
}
