package escrow

import (
	"github.com/gogo/protobuf/proto"
	"github.com/vibe-network/vibe"
)

// Escrow is a pending booking escrow. The locked funds are the balance
// of the custody address in the cash ledger.
type Escrow struct {
	Metadata *vibe.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Depositor is the address that locked the funds.
	Depositor vibe.Address `protobuf:"bytes,2,opt,name=depositor,proto3" json:"depositor,omitempty"`
	// Counterparty is the only address that may release the funds.
	Counterparty vibe.Address `protobuf:"bytes,3,opt,name=counterparty,proto3" json:"counterparty,omitempty"`
	// BookingID is 1 to 32 bytes long.
	BookingID string `protobuf:"bytes,4,opt,name=booking_id,json=bookingId,proto3" json:"booking_id,omitempty"`
	// VerifyCode is 1 to 6 bytes long.
	VerifyCode string `protobuf:"bytes,5,opt,name=verify_code,json=verifyCode,proto3" json:"verify_code,omitempty"`
	// Address is the custody address of the escrow key.
	Address vibe.Address `protobuf:"bytes,6,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *Escrow) Reset()         { *m = Escrow{} }
func (m *Escrow) String() string { return proto.CompactTextString(m) }
func (*Escrow) ProtoMessage()    {}

// OpenMsg locks amount for the booking until the counterparty
// releases it with the verification code.
type OpenMsg struct {
	Metadata *vibe.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Depositor defaults to the main signer.
	Depositor    vibe.Address `protobuf:"bytes,2,opt,name=depositor,proto3" json:"depositor,omitempty"`
	Counterparty vibe.Address `protobuf:"bytes,3,opt,name=counterparty,proto3" json:"counterparty,omitempty"`
	BookingID    string       `protobuf:"bytes,4,opt,name=booking_id,json=bookingId,proto3" json:"booking_id,omitempty"`
	VerifyCode   string       `protobuf:"bytes,5,opt,name=verify_code,json=verifyCode,proto3" json:"verify_code,omitempty"`
	Amount       uint64       `protobuf:"varint,6,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *OpenMsg) Reset()         { *m = OpenMsg{} }
func (m *OpenMsg) String() string { return proto.CompactTextString(m) }
func (*OpenMsg) ProtoMessage()    {}

// ReleaseMsg moves all funds of an escrow to its counterparty.
type ReleaseMsg struct {
	Metadata   *vibe.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	BookingID  string         `protobuf:"bytes,2,opt,name=booking_id,json=bookingId,proto3" json:"booking_id,omitempty"`
	VerifyCode string         `protobuf:"bytes,3,opt,name=verify_code,json=verifyCode,proto3" json:"verify_code,omitempty"`
	// Releaser defaults to the main signer.
	Releaser vibe.Address `protobuf:"bytes,4,opt,name=releaser,proto3" json:"releaser,omitempty"`
}

func (m *ReleaseMsg) Reset()         { *m = ReleaseMsg{} }
func (m *ReleaseMsg) String() string { return proto.CompactTextString(m) }
func (*ReleaseMsg) ProtoMessage()    {}

// Configuration narrows the accepted lengths of booking identifiers
// and verification codes.
type Configuration struct {
	Metadata           *vibe.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	MaxBookingIDLength int32          `protobuf:"varint,2,opt,name=max_booking_id_length,json=maxBookingIdLength,proto3" json:"max_booking_id_length,omitempty"`
	MaxCodeLength      int32          `protobuf:"varint,3,opt,name=max_code_length,json=maxCodeLength,proto3" json:"max_code_length,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}
