package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"

	v1 "github.com/kanengo/church/api/church/v1"
	"github.com/kanengo/church/church"
	"github.com/kanengo/church/errors"
	"github.com/kanengo/church/internal/conf"
)

func newService() *ConditionalService {
	return NewConditionalService(conf.Default().Branches)
}

func TestBranch(t *testing.T) {
	s := newService()

	reply, err := s.Branch(context.Background(), wrapperspb.UInt32(v1.SelectorTrue))
	require.NoError(t, err)
	assert.Equal(t, "True branch", reply.GetValue())

	reply, err = s.Branch(context.Background(), wrapperspb.UInt32(v1.SelectorFalse))
	require.NoError(t, err)
	assert.Equal(t, "False branch", reply.GetValue())
}

func TestBranchInvalid(t *testing.T) {
	s := newService()
	for _, v := range []uint32{0, 3, 256, 257, 1<<32 - 1} {
		_, err := s.Branch(context.Background(), wrapperspb.UInt32(v))
		assert.ErrorIs(t, err, church.ErrInvalidSelector, "value %d", v)
		assert.True(t, errors.IsBadRequest(err))
		assert.Equal(t, strconv.FormatUint(uint64(v), 10), errors.FromError(err).Metadata["value"])

		_, err = s.Not(context.Background(), wrapperspb.UInt32(v))
		assert.ErrorIs(t, err, church.ErrInvalidSelector, "value %d", v)
		assert.Equal(t, strconv.FormatUint(uint64(v), 10), errors.FromError(err).Metadata["value"])
	}
}

func TestNot(t *testing.T) {
	s := newService()

	reply, err := s.Not(context.Background(), wrapperspb.UInt32(v1.SelectorTrue))
	require.NoError(t, err)
	assert.Equal(t, v1.SelectorFalse, reply.GetValue())

	_, err = s.Not(context.Background(), wrapperspb.UInt32(0))
	assert.ErrorIs(t, err, church.ErrInvalidSelector)
}

func TestWire(t *testing.T) {
	assert.Equal(t, church.True, FromWire(v1.SelectorTrue))
	assert.Equal(t, church.False, FromWire(v1.SelectorFalse))
	assert.Equal(t, v1.SelectorTrue, ToWire(church.True))
	assert.False(t, FromWire(1<<8+1).Valid())
}
