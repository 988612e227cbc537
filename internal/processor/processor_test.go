package processor

import (
	"testing"

	"github.com/andrei-cloud/cryptoproc/internal/errorcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantResult string
		wantError  string
		wantCode   string
	}{
		{
			name:       "hash hello",
			line:       `{"cmd":"hash","data":"68656c6c6f"}`,
			wantResult: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:      "unknown command",
			line:      `{"cmd":"foo"}`,
			wantError: "Unknown command: foo",
			wantCode:  errorcodes.ErrUnknownCommand.CodeOnly(),
		},
		{
			name:      "commands are case-sensitive",
			line:      `{"cmd":"HASH","data":"00"}`,
			wantError: "Unknown command: HASH",
			wantCode:  errorcodes.ErrUnknownCommand.CodeOnly(),
		},
		{
			name:      "empty command",
			line:      `{"cmd":""}`,
			wantError: "Unknown command: ",
			wantCode:  errorcodes.ErrUnknownCommand.CodeOnly(),
		},
		{
			name:      "unsupported hash",
			line:      `{"cmd":"hash","data":"00","algorithm":"md5"}`,
			wantError: "Unsupported hash algorithm: md5",
			wantCode:  errorcodes.ErrUnsupportedHash.CodeOnly(),
		},
		{
			name:      "encrypt missing key",
			line:      `{"cmd":"encrypt","data":"00"}`,
			wantError: "Missing key",
			wantCode:  errorcodes.ErrMissingKey.CodeOnly(),
		},
	}

	d := NewDispatcher()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outcome := d.Process([]byte(tt.line))
			resp := outcome.Response()
			require.NotNil(t, outcome.Request)

			if tt.wantError != "" {
				require.NotNil(t, resp.Error)
				assert.Nil(t, resp.Result)
				assert.Equal(t, tt.wantError, *resp.Error)
				assert.Equal(t, tt.wantCode, outcome.Code())
				return
			}

			require.NotNil(t, resp.Result)
			assert.Nil(t, resp.Error)
			assert.Equal(t, tt.wantResult, *resp.Result)
			assert.Empty(t, outcome.Code())
		})
	}
}

func TestProcessInvalidJSON(t *testing.T) {
	t.Parallel()

	outcome := NewDispatcher().Process([]byte("not json"))
	assert.Nil(t, outcome.Request)
	assert.ErrorIs(t, outcome.Err, errorcodes.ErrInvalidJSON)

	resp := outcome.Response()
	require.NotNil(t, resp.Error)
	assert.Nil(t, resp.Result)
	assert.Contains(t, *resp.Error, "Invalid JSON: ")
}

func TestHashWithoutAlgorithmMatchesSHA256(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()
	implicit := d.Process([]byte(`{"cmd":"hash","data":"cafebabe"}`)).Response()
	explicit := d.Process([]byte(`{"cmd":"hash","data":"cafebabe","algorithm":"sha256"}`)).Response()
	assert.Equal(t, implicit, explicit)
}

func TestOutcomeWithoutResultIsInternalError(t *testing.T) {
	t.Parallel()

	resp := Outcome{}.Response()
	require.NotNil(t, resp.Error)
	assert.Equal(t, errorcodes.ErrInternal.Error(), *resp.Error)
	assert.Equal(t, errorcodes.ErrInternal.CodeOnly(), Outcome{}.Code())
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Command{CommandHash, CommandEncrypt}, Commands())
	for _, c := range Commands() {
		info, ok := Describe(c)
		require.True(t, ok, c)
		assert.Equal(t, c, info.Command)
		assert.NotEmpty(t, info.Description)
		assert.NotNil(t, info.Execute)
	}

	_, ok := Lookup("decrypt")
	assert.False(t, ok)
	_, ok = Lookup("Encrypt")
	assert.False(t, ok)
}
