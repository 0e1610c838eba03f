package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/vibe-network/vibe"
)

// Set may contain the balance of an account.
type Set struct {
	Metadata *vibe.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Amount   uint64         `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Set) Reset()         { *m = Set{} }
func (m *Set) String() string { return proto.CompactTextString(m) }
func (*Set) ProtoMessage()    {}

func (m *Set) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// SendMsg is a request to move these coins from the given
// source to the given destination address.
type SendMsg struct {
	Metadata    *vibe.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      vibe.Address   `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Destination vibe.Address   `protobuf:"bytes,3,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      uint64         `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	// max length 128 character
	Memo string `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}
