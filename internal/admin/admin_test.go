package admin

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/neoinbox/internal/common"
)

type fakeRegistrar struct {
	err                   error
	name, email, password string
	calls                 int
}

func (f *fakeRegistrar) Register(_ context.Context, name, email, pw string) (int64, error) {
	f.calls++
	f.name, f.email, f.password = name, email, pw
	if f.err != nil {
		return 0, f.err
	}
	return 42, nil
}

// stubPasswords makes readPassword return the given answers in order.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no more input")
		}
		a := answers[0]
		answers = answers[1:]
		return []byte(a), nil
	}
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, Run(context.Background(), nil, &fakeRegistrar{}, strings.NewReader(""), &out), ErrUsage)
	assert.ErrorIs(t, Run(context.Background(), []string{"delete"}, &fakeRegistrar{}, strings.NewReader(""), &out), ErrUsage)
}

func TestRegister_WithFlags(t *testing.T) {
	stubPasswords(t, "secret1", "secret1")
	svc := &fakeRegistrar{}
	var out bytes.Buffer

	err := Run(context.Background(), []string{"register", "-name", "Ann", "-email", "ann@x.com", "-c", "cfg.json"}, svc, strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "Ann", svc.name)
	assert.Equal(t, "ann@x.com", svc.email)
	assert.Equal(t, "secret1", svc.password)
	assert.Contains(t, out.String(), "registered user 42")
	assert.NotContains(t, out.String(), "secret1")
}

func TestRegister_Prompts(t *testing.T) {
	stubPasswords(t, "secret1", "secret1")
	svc := &fakeRegistrar{}
	var out bytes.Buffer

	err := Run(context.Background(), []string{"register"}, svc, strings.NewReader("Bob\nbob@x.com\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "Bob", svc.name)
	assert.Equal(t, "bob@x.com", svc.email)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name      string
		passwords []string
		args      []string
		svcErr    error
		wantErr   string
		wantIs    error
	}{
		{name: "mismatch", passwords: []string{"a", "b"}, args: []string{"-name", "Ann", "-email", "ann@x.com"}, wantErr: "do not match"},
		{name: "invalid email", passwords: []string{"a", "a"}, args: []string{"-name", "Ann", "-email", "nope"}, wantIs: common.ErrorValidation},
		{name: "taken", passwords: []string{"a", "a"}, args: []string{"-name", "Ann", "-email", "ann@x.com"}, svcErr: common.ErrorEmailTaken, wantErr: "already registered"},
		{name: "store", passwords: []string{"a", "a"}, args: []string{"-name", "Ann", "-email", "ann@x.com"}, svcErr: common.ErrorStoreFailure, wantIs: common.ErrorStoreFailure},
		{name: "terminal", passwords: nil, args: []string{"-name", "Ann", "-email", "ann@x.com"}, wantErr: "no more input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPasswords(t, tt.passwords...)
			svc := &fakeRegistrar{err: tt.svcErr}

			err := Run(context.Background(), append([]string{"register"}, tt.args...), svc, strings.NewReader(""), &bytes.Buffer{})
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("hello world\n")), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())

	got, err = GetSimpleText(bufio.NewReader(strings.NewReader("lastline")), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Name?", &out)
	assert.Error(t, err)
}
