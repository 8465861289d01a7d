package catr_test

import (
	"testing"

	"github.com/rcarmo/catr/pkg/catr"
	"github.com/rcarmo/catr/pkg/core"
	"github.com/rcarmo/catr/pkg/testutil"
)

func TestCatr(t *testing.T) {
	tests := []testutil.AppletTestCase{
		{
			Name:     "basic_file",
			Args:     []string{"test.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "hello\nworld\n",
			Files: map[string]string{
				"test.txt": "hello\nworld\n",
			},
		},
		{
			Name:     "number_lines",
			Args:     []string{"-n", "test.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "     1\thello\n     2\tworld\n",
			Files: map[string]string{
				"test.txt": "hello\nworld\n",
			},
		},
		{
			Name:     "number_lines_long",
			Args:     []string{"--number"},
			Input:    "line 1\n\nline 3\n",
			WantCode: core.ExitSuccess,
			WantOut:  "     1\tline 1\n     2\t\n     3\tline 3\n",
		},
		{
			Name:     "number_nonblank",
			Args:     []string{"-b", "test.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "     1\ta\n\n     2\tb\n",
			Files: map[string]string{
				"test.txt": "a\n\nb\n",
			},
		},
		{
			Name:     "number_nonblank_long",
			Args:     []string{"--number-nonblank"},
			Input:    "\n\nx\n  \n\ny\n",
			WantCode: core.ExitSuccess,
			WantOut:  "\n\n     1\tx\n     2\t  \n\n     3\ty\n",
		},
		{
			Name:     "multiple_files",
			Args:     []string{"a.txt", "b.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "aaa\nbbb\n",
			Files: map[string]string{
				"a.txt": "aaa\n",
				"b.txt": "bbb\n",
			},
		},
		{
			Name:     "counter_resets_per_file",
			Args:     []string{"-n", "a.txt", "b.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "     1\ta1\n     2\ta2\n     1\tb1\n",
			Files: map[string]string{
				"a.txt": "a1\na2\n",
				"b.txt": "b1\n",
			},
		},
		{
			Name:     "flag_after_file",
			Args:     []string{"test.txt", "-n"},
			WantCode: core.ExitSuccess,
			WantOut:  "     1\tx\n",
			Files: map[string]string{
				"test.txt": "x\n",
			},
		},
		{
			Name:     "double_dash",
			Args:     []string{"--", "-n"},
			WantCode: core.ExitSuccess,
			WantOut:  "not a flag\n",
			Files: map[string]string{
				"-n": "not a flag\n",
			},
		},
		{
			Name:     "stdin_default",
			Input:    "stdin content\n",
			WantCode: core.ExitSuccess,
			WantOut:  "stdin content\n",
		},
		{
			Name:     "stdin_dash",
			Args:     []string{"-"},
			Input:    "stdin content\n",
			WantCode: core.ExitSuccess,
			WantOut:  "stdin content\n",
		},
		{
			Name:     "stdin_between_files",
			Args:     []string{"a.txt", "-", "b.txt"},
			Input:    "middle\n",
			WantCode: core.ExitSuccess,
			WantOut:  "aaa\nmiddle\nbbb\n",
			Files: map[string]string{
				"a.txt": "aaa\n",
				"b.txt": "bbb\n",
			},
		},
		{
			Name:     "missing_trailing_newline",
			Args:     []string{"-n"},
			Input:    "abc",
			WantCode: core.ExitSuccess,
			WantOut:  "     1\tabc\n",
		},
		{
			Name:     "crlf_stripped",
			Args:     []string{"test.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "a\nb\n",
			Files: map[string]string{
				"test.txt": "a\r\nb\r\n",
			},
		},
		{
			Name:      "empty_file",
			Args:      []string{"-n", "empty.txt"},
			WantCode:  core.ExitSuccess,
			WantNoOut: true,
			WantNoErr: true,
			Files: map[string]string{
				"empty.txt": "",
			},
		},
		{
			Name:      "missing_file",
			Args:      []string{"missing.txt"},
			WantCode:  core.ExitSuccess,
			WantNoOut: true,
			WantErr:   "catr: failed to open missing.txt: no such file or directory",
		},
		{
			Name:     "missing_file_halts_run",
			Args:     []string{"a.txt", "missing.txt", "b.txt"},
			WantCode: core.ExitSuccess,
			WantOut:  "aaa\n",
			WantErr:  "missing.txt",
			Files: map[string]string{
				"a.txt": "aaa\n",
				"b.txt": "bbb\n",
			},
		},
		{
			Name:     "directory_read_error",
			Args:     []string{"a.txt", "sub", "b.txt"},
			WantCode: core.ExitFailure,
			WantOut:  "aaa\n",
			WantErr:  "catr: sub: is a directory",
			Files: map[string]string{
				"a.txt":     "aaa\n",
				"b.txt":     "bbb\n",
				"sub/inner": "",
			},
		},
		{
			Name:      "conflicting_flags",
			Args:      []string{"-n", "-b", "test.txt"},
			WantCode:  core.ExitUsage,
			WantNoOut: true,
			WantErr:   "number-nonblank",
			Files: map[string]string{
				"test.txt": "x\n",
			},
		},
		{
			Name:      "conflicting_flags_combined",
			Args:      []string{"-nb"},
			Input:     "x\n",
			WantCode:  core.ExitUsage,
			WantNoOut: true,
			WantErr:   "Usage:",
		},
		{
			Name:      "conflicting_flags_long",
			Args:      []string{"--number-nonblank", "--number"},
			Input:     "x\n",
			WantCode:  core.ExitUsage,
			WantNoOut: true,
			WantErr:   "catr:",
		},
		{
			Name:      "invalid_option",
			Args:      []string{"-x"},
			WantCode:  core.ExitUsage,
			WantNoOut: true,
			WantErr:   "unknown shorthand flag: 'x'",
		},
		{
			Name:       "help",
			Args:       []string{"--help"},
			WantCode:   core.ExitSuccess,
			WantOutSub: "-b, --number-nonblank",
			WantNoErr:  true,
		},
		{
			Name:       "help_short",
			Args:       []string{"-h"},
			WantCode:   core.ExitSuccess,
			WantOutSub: "catr [OPTIONS] [FILE...]",
		},
		{
			Name:     "version",
			Args:     []string{"-V"},
			WantCode: core.ExitSuccess,
			WantOut:  "catr 0.1.0\n",
		},
		{
			Name:     "version_long",
			Args:     []string{"--version"},
			WantCode: core.ExitSuccess,
			WantOut:  "catr 0.1.0\n",
		},
	}

	testutil.RunAppletTests(t, catr.Run, tests)
}
