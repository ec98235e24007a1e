package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fablesDescriptor = `
<project>
   <name>fables</name>
   <build-dir>target/site</build-dir>
   <exclude-dirs>src</exclude-dirs>
   <display> </display>
   <description></description>
   <head>
       <script src=''></script>
       <script src=''/>
   </head>
</project>`

func TestImportDescriptor(t *testing.T) {
	s := newTestStore(t, nil, nil)

	n, err := s.ImportDescriptor(strings.NewReader(fablesDescriptor))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	want := map[string]string{
		"project.name": "fables",
		"build.dir":    "target/site",
		"exclude.dirs": "src",
	}
	if diff := cmp.Diff(want, s.project.Map()); diff != "" {
		t.Errorf("project properties mismatch (-want +got):\n%s", diff)
	}
}

func TestImportDescriptor_DoesNotOverwrite(t *testing.T) {
	s := newTestStore(t, map[string]string{"project.name": "kept"}, nil)

	n, err := s.ImportDescriptor(strings.NewReader(fablesDescriptor))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, _ := s.Get("project.name")
	assert.Equal(t, "kept", got)
}

func TestImportDescriptor_Idempotent(t *testing.T) {
	s := newTestStore(t, nil, nil)

	_, err := s.ImportDescriptor(strings.NewReader(fablesDescriptor))
	require.NoError(t, err)
	n, err := s.ImportDescriptor(strings.NewReader(fablesDescriptor))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 3, s.project.Len())
}

func TestImportDescriptor_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "attribute without value", input: "<project name></project>"},
		{name: "broken tag", input: "<project><</project>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, nil, nil)
			_, err := s.ImportDescriptor(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDescriptorKey(t *testing.T) {
	tests := map[string]string{
		"name":           "project.name",
		"build-dir":      "build.dir",
		"exclude-dirs":   "exclude.dirs",
		"site-build-dir": "site.build.dir",
	}
	for tag, want := range tests {
		if got := DescriptorKey(tag); got != want {
			t.Errorf("DescriptorKey(%q) = %q, want %q", tag, got, want)
		}
	}
}
