package app

import (
	"github.com/gogo/protobuf/proto"

	"github.com/vibe-network/vibe/x/cash"
	"github.com/vibe-network/vibe/x/escrow"
	"github.com/vibe-network/vibe/x/sigs"
)

// Tx contains the message and the signatures authorizing it.
// Exactly one of the message fields must be set.
type Tx struct {
	Signatures       []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	SendMsg          *cash.SendMsg        `protobuf:"bytes,51,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
	OpenEscrowMsg    *escrow.OpenMsg      `protobuf:"bytes,52,opt,name=open_escrow_msg,json=openEscrowMsg,proto3" json:"open_escrow_msg,omitempty"`
	ReleaseEscrowMsg *escrow.ReleaseMsg   `protobuf:"bytes,53,opt,name=release_escrow_msg,json=releaseEscrowMsg,proto3" json:"release_escrow_msg,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

func (m *Tx) GetSignatures() []*sigs.StdSignature {
	if m != nil {
		return m.Signatures
	}
	return nil
}
