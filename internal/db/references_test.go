package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	authorA = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	authorB = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	authorC = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003")
	authorD = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000004")
)

func TestResolveAuthorOrder(t *testing.T) {
	tests := []struct {
		name    string
		stored  UUIDList
		natural UUIDList
		want    UUIDList
	}{
		{
			name:    "stored positions survive",
			stored:  UUIDList{authorC, authorA, authorB},
			natural: UUIDList{authorA, authorB, authorC},
			want:    UUIDList{authorC, authorA, authorB},
		},
		{
			name:    "new members append in natural order",
			stored:  UUIDList{authorB, authorA},
			natural: UUIDList{authorA, authorB, authorC, authorD},
			want:    UUIDList{authorB, authorA, authorC, authorD},
		},
		{
			name:    "departed members drop out",
			stored:  UUIDList{authorC, authorA, authorB},
			natural: UUIDList{authorA, authorB},
			want:    UUIDList{authorA, authorB},
		},
		{
			name:    "duplicates collapse to first occurrence",
			stored:  UUIDList{authorB, authorA, authorB},
			natural: UUIDList{authorA, authorB},
			want:    UUIDList{authorB, authorA},
		},
		{
			name:    "no stored order keeps natural order",
			stored:  nil,
			natural: UUIDList{authorA, authorB},
			want:    UUIDList{authorA, authorB},
		},
		{
			name:    "resubmitted list is stored as sent",
			stored:  UUIDList{authorC, authorA, authorB},
			natural: UUIDList{authorC, authorA, authorB},
			want:    UUIDList{authorC, authorA, authorB},
		},
		{
			name:    "no members resolves to nil",
			stored:  UUIDList{authorA},
			natural: nil,
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAuthorOrder(tt.stored, tt.natural))
		})
	}
}
