package iovalidate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aprl-ssp/ctypes/internal/iotesting"
	"github.com/aprl-ssp/ctypes/internal/iovalidate"
	"github.com/aprl-ssp/ctypes/pkg/config"
	"github.com/aprl-ssp/ctypes/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullTable = `compound,atom,type,group,match
m1,C1,C,alcohol,1
m1,C1,C,ketone,
m1,C2,C,alcohol,1
m1,C2,C,ketone,2
m1,O3,O,alcohol,1
m2,C1,C,ketone,
m2,O2,O,ketone,1
`

const atoms = `compound,carbon,oxygen
m1,2,1
m2,1,1
m3,6,0
`

func inputs(t *testing.T, full, truth string) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	fullPath := iotesting.WriteFile(t, dir, "atomfulltable.csv", full)
	atomsPath := iotesting.WriteFile(t, dir, "commonatoms.csv", truth)
	return fullPath, atomsPath, dir
}

func gnCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be *gn.Error")
	return gnErr.Code
}

func TestPaths(t *testing.T) {
	assert.Equal(t, []string{
		"apinene_validation_completeness.pdf",
		"apinene_validation_specificity_FG.pdf",
		"apinene_validation_specificity_carbon.pdf",
	}, iovalidate.Paths("apinene"))
}

func TestValidate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PDF rendering in short mode")
	}
	fullPath, atomsPath, dir := inputs(t, fullTable, atoms)
	prefix := filepath.Join(dir, "report", "test")

	v := iovalidate.New(config.New())
	paths, err := v.Validate(context.Background(), fullPath, atomsPath, prefix)
	require.NoError(t, err)
	assert.Equal(t, iovalidate.Paths(prefix), paths)

	for _, p := range paths {
		content, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(content[:4]), p)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		msg   string
		full  string
		truth string
		code  gn.ErrorCode
	}{
		{
			msg:   "duplicate elements",
			full:  fullTable,
			truth: "compound,C,carbon\nm1,2,2\n",
			code:  errcode.ValidationTruthError,
		},
		{
			msg:   "no elements",
			full:  fullTable,
			truth: "compound\nm1\n",
			code:  errcode.ValidationTruthError,
		},
		{
			msg:   "bad count",
			full:  fullTable,
			truth: "compound,C\nm1,many\n",
			code:  errcode.TableValueError,
		},
		{
			msg:   "no match column",
			full:  "compound,atom,type,group\nm1,C1,C,alcohol\n",
			truth: atoms,
			code:  errcode.TableColumnError,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			fullPath, atomsPath, dir := inputs(t, v.full, v.truth)
			_, err := iovalidate.New(config.New()).Validate(
				context.Background(), fullPath, atomsPath,
				filepath.Join(dir, "out"),
			)
			assert.Equal(t, v.code, gnCode(t, err))
		})
	}
}
