package iso8211

import (
	"reflect"
	"testing"
)

func TestParseFormatControls(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    []subfieldDescriptor
		wantErr bool
	}{
		{
			name:   "variable text triple",
			format: "(A,I,R)",
			want: []subfieldDescriptor{
				{Kind: reflect.String, Size: 0},
				{Kind: reflect.String, Size: 0},
				{Kind: reflect.String, Size: 0},
			},
		},
		{
			name:   "integer text honors explicit width",
			format: "(I(10))",
			want: []subfieldDescriptor{
				{Kind: reflect.String, Size: 10},
			},
		},
		{
			name:   "unsigned binary widths",
			format: "(b11,b12,b14)",
			want: []subfieldDescriptor{
				{Kind: reflect.Uint8, Size: 1},
				{Kind: reflect.Uint16, Size: 2},
				{Kind: reflect.Uint32, Size: 4},
			},
		},
		{
			name:   "signed binary widths",
			format: "(b21,b22,b24)",
			want: []subfieldDescriptor{
				{Kind: reflect.Int8, Size: 1},
				{Kind: reflect.Int16, Size: 2},
				{Kind: reflect.Int32, Size: 4},
			},
		},
		{
			name:   "repeat count expands group",
			format: "(2(b11,b14))",
			want: []subfieldDescriptor{
				{Kind: reflect.Uint8, Size: 1},
				{Kind: reflect.Uint32, Size: 4},
				{Kind: reflect.Uint8, Size: 1},
				{Kind: reflect.Uint32, Size: 4},
			},
		},
		{
			name:   "arbitrary bit string",
			format: "(B(16))",
			want: []subfieldDescriptor{
				{Kind: reflect.Slice, Size: 2},
			},
		},
		{
			name:    "unknown letter",
			format:  "(Z)",
			wantErr: true,
		},
		{
			name:    "missing parens",
			format:  "A,I",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFormatControls("TEST", tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormatControls(%q) = %#v, want %#v", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseArrayDescriptor(t *testing.T) {
	labels, repeated := parseArrayDescriptor("*ATTL!ATVL")
	if !repeated {
		t.Fatal("expected repeated group")
	}
	want := []string{"ATTL", "ATVL"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}

	labels, repeated = parseArrayDescriptor("RCNM!RCID")
	if repeated {
		t.Fatal("did not expect repeated group")
	}
	want = []string{"RCNM", "RCID"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}
