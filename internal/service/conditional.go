package service

import (
	"context"
	"math"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/wrapperspb"

	v1 "github.com/kanengo/church/api/church/v1"
	"github.com/kanengo/church/church"
	"github.com/kanengo/church/internal/conf"
	"github.com/kanengo/church/internal/log"
)

var _ v1.ConditionalServer = (*ConditionalService)(nil)

type ConditionalService struct {
	v1.UnimplementedConditionalServer

	branches conf.Branches
}

func NewConditionalService(branches conf.Branches) *ConditionalService {
	return &ConditionalService{branches: branches}
}

func (s *ConditionalService) Branch(ctx context.Context, in *wrapperspb.UInt32Value) (*wrapperspb.StringValue, error) {
	sel, err := selectorOf(in.GetValue())
	if err != nil {
		return nil, err
	}
	text, err := church.Select(sel, s.branch("onTrue", s.branches.True), s.branch("onFalse", s.branches.False))
	if err != nil {
		return nil, err
	}
	return wrapperspb.String(text), nil
}

func (s *ConditionalService) Not(ctx context.Context, in *wrapperspb.UInt32Value) (*wrapperspb.UInt32Value, error) {
	sel, err := selectorOf(in.GetValue())
	if err != nil {
		return nil, err
	}
	return wrapperspb.UInt32(ToWire(sel.Not())), nil
}

func (s *ConditionalService) branch(name, text string) church.Thunk[string] {
	return func() string {
		log.Debug("[church] branch taken", zap.String("branch", name))
		return text
	}
}

// selectorOf rejects non-canonical wire values, reporting the value as received.
func selectorOf(v uint32) (church.Selector, error) {
	sel := FromWire(v)
	if !sel.Valid() {
		return 0, church.ErrInvalidSelector.WithMetadata(map[string]string{"value": strconv.FormatUint(uint64(v), 10)})
	}
	return sel, nil
}

// FromWire maps a wire value onto a Selector; out-of-range values map to the invalid zero Selector.
func FromWire(v uint32) church.Selector {
	if v > math.MaxUint8 {
		return 0
	}
	return church.Selector(v)
}

func ToWire(s church.Selector) uint32 {
	return uint32(s)
}
