package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServicePrefix is the fully qualified package of the API services
const ServicePrefix = "vtm.api.v1alpha1."

// unary adapts a server method to a grpc.MethodHandler, decoding the request
// and running it through the interceptor chain
func unary[S, Req, Resp any](fn func(S, context.Context, *Req) (*Resp, error), fullMethod string) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return fn(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return fn(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// invoke calls a unary method with the JSON codec
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DiceService method names
const (
	DiceService_RollV5_FullMethodName        = "/" + ServicePrefix + "DiceService/RollV5"
	DiceService_WillpowerRoll_FullMethodName = "/" + ServicePrefix + "DiceService/WillpowerRoll"
	DiceService_RemorseCheck_FullMethodName  = "/" + ServicePrefix + "DiceService/RemorseCheck"
	DiceService_ContestedV5_FullMethodName   = "/" + ServicePrefix + "DiceService/ContestedV5"
	DiceService_RollV20_FullMethodName       = "/" + ServicePrefix + "DiceService/RollV20"
	DiceService_ExtendedV20_FullMethodName   = "/" + ServicePrefix + "DiceService/ExtendedV20"
	DiceService_ResistedV20_FullMethodName   = "/" + ServicePrefix + "DiceService/ResistedV20"
	DiceService_DamageV20_FullMethodName     = "/" + ServicePrefix + "DiceService/DamageV20"
	DiceService_SoakV20_FullMethodName       = "/" + ServicePrefix + "DiceService/SoakV20"
	DiceService_ListRolls_FullMethodName     = "/" + ServicePrefix + "DiceService/ListRolls"
)

// DiceServiceServer is the server API for DiceService
type DiceServiceServer interface {
	RollV5(context.Context, *RollV5Request) (*V5RollResponse, error)
	WillpowerRoll(context.Context, *WillpowerRollRequest) (*V5RollResponse, error)
	RemorseCheck(context.Context, *RemorseCheckRequest) (*RemorseCheckResponse, error)
	ContestedV5(context.Context, *ContestedV5Request) (*ContestedV5Response, error)
	RollV20(context.Context, *RollV20Request) (*RollV20Response, error)
	ExtendedV20(context.Context, *ExtendedV20Request) (*ExtendedV20Response, error)
	ResistedV20(context.Context, *ResistedV20Request) (*ResistedV20Response, error)
	DamageV20(context.Context, *DamageV20Request) (*DamageV20Response, error)
	SoakV20(context.Context, *SoakV20Request) (*SoakV20Response, error)
	ListRolls(context.Context, *ListRollsRequest) (*ListRollsResponse, error)
}

// DiceService_ServiceDesc is the grpc.ServiceDesc for DiceService
var DiceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServicePrefix + "DiceService",
	HandlerType: (*DiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RollV5", Handler: unary(DiceServiceServer.RollV5, DiceService_RollV5_FullMethodName)},
		{MethodName: "WillpowerRoll", Handler: unary(DiceServiceServer.WillpowerRoll, DiceService_WillpowerRoll_FullMethodName)},
		{MethodName: "RemorseCheck", Handler: unary(DiceServiceServer.RemorseCheck, DiceService_RemorseCheck_FullMethodName)},
		{MethodName: "ContestedV5", Handler: unary(DiceServiceServer.ContestedV5, DiceService_ContestedV5_FullMethodName)},
		{MethodName: "RollV20", Handler: unary(DiceServiceServer.RollV20, DiceService_RollV20_FullMethodName)},
		{MethodName: "ExtendedV20", Handler: unary(DiceServiceServer.ExtendedV20, DiceService_ExtendedV20_FullMethodName)},
		{MethodName: "ResistedV20", Handler: unary(DiceServiceServer.ResistedV20, DiceService_ResistedV20_FullMethodName)},
		{MethodName: "DamageV20", Handler: unary(DiceServiceServer.DamageV20, DiceService_DamageV20_FullMethodName)},
		{MethodName: "SoakV20", Handler: unary(DiceServiceServer.SoakV20, DiceService_SoakV20_FullMethodName)},
		{MethodName: "ListRolls", Handler: unary(DiceServiceServer.ListRolls, DiceService_ListRolls_FullMethodName)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterDiceServiceServer registers srv with s
func RegisterDiceServiceServer(s grpc.ServiceRegistrar, srv DiceServiceServer) {
	s.RegisterService(&DiceService_ServiceDesc, srv)
}

// DiceServiceClient is the client API for DiceService
type DiceServiceClient interface {
	RollV5(ctx context.Context, in *RollV5Request, opts ...grpc.CallOption) (*V5RollResponse, error)
	WillpowerRoll(ctx context.Context, in *WillpowerRollRequest, opts ...grpc.CallOption) (*V5RollResponse, error)
	RemorseCheck(ctx context.Context, in *RemorseCheckRequest, opts ...grpc.CallOption) (*RemorseCheckResponse, error)
	ContestedV5(ctx context.Context, in *ContestedV5Request, opts ...grpc.CallOption) (*ContestedV5Response, error)
	RollV20(ctx context.Context, in *RollV20Request, opts ...grpc.CallOption) (*RollV20Response, error)
	ExtendedV20(ctx context.Context, in *ExtendedV20Request, opts ...grpc.CallOption) (*ExtendedV20Response, error)
	ResistedV20(ctx context.Context, in *ResistedV20Request, opts ...grpc.CallOption) (*ResistedV20Response, error)
	DamageV20(ctx context.Context, in *DamageV20Request, opts ...grpc.CallOption) (*DamageV20Response, error)
	SoakV20(ctx context.Context, in *SoakV20Request, opts ...grpc.CallOption) (*SoakV20Response, error)
	ListRolls(ctx context.Context, in *ListRollsRequest, opts ...grpc.CallOption) (*ListRollsResponse, error)
}

type diceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDiceServiceClient creates a client that speaks JSON to DiceService
func NewDiceServiceClient(cc grpc.ClientConnInterface) DiceServiceClient {
	return &diceServiceClient{cc: cc}
}

func (c *diceServiceClient) RollV5(ctx context.Context, in *RollV5Request, opts ...grpc.CallOption) (*V5RollResponse, error) {
	return invoke[V5RollResponse](ctx, c.cc, DiceService_RollV5_FullMethodName, in, opts)
}

func (c *diceServiceClient) WillpowerRoll(ctx context.Context, in *WillpowerRollRequest, opts ...grpc.CallOption) (*V5RollResponse, error) {
	return invoke[V5RollResponse](ctx, c.cc, DiceService_WillpowerRoll_FullMethodName, in, opts)
}

func (c *diceServiceClient) RemorseCheck(ctx context.Context, in *RemorseCheckRequest, opts ...grpc.CallOption) (*RemorseCheckResponse, error) {
	return invoke[RemorseCheckResponse](ctx, c.cc, DiceService_RemorseCheck_FullMethodName, in, opts)
}

func (c *diceServiceClient) ContestedV5(ctx context.Context, in *ContestedV5Request, opts ...grpc.CallOption) (*ContestedV5Response, error) {
	return invoke[ContestedV5Response](ctx, c.cc, DiceService_ContestedV5_FullMethodName, in, opts)
}

func (c *diceServiceClient) RollV20(ctx context.Context, in *RollV20Request, opts ...grpc.CallOption) (*RollV20Response, error) {
	return invoke[RollV20Response](ctx, c.cc, DiceService_RollV20_FullMethodName, in, opts)
}

func (c *diceServiceClient) ExtendedV20(ctx context.Context, in *ExtendedV20Request, opts ...grpc.CallOption) (*ExtendedV20Response, error) {
	return invoke[ExtendedV20Response](ctx, c.cc, DiceService_ExtendedV20_FullMethodName, in, opts)
}

func (c *diceServiceClient) ResistedV20(ctx context.Context, in *ResistedV20Request, opts ...grpc.CallOption) (*ResistedV20Response, error) {
	return invoke[ResistedV20Response](ctx, c.cc, DiceService_ResistedV20_FullMethodName, in, opts)
}

func (c *diceServiceClient) DamageV20(ctx context.Context, in *DamageV20Request, opts ...grpc.CallOption) (*DamageV20Response, error) {
	return invoke[DamageV20Response](ctx, c.cc, DiceService_DamageV20_FullMethodName, in, opts)
}

func (c *diceServiceClient) SoakV20(ctx context.Context, in *SoakV20Request, opts ...grpc.CallOption) (*SoakV20Response, error) {
	return invoke[SoakV20Response](ctx, c.cc, DiceService_SoakV20_FullMethodName, in, opts)
}

func (c *diceServiceClient) ListRolls(ctx context.Context, in *ListRollsRequest, opts ...grpc.CallOption) (*ListRollsResponse, error) {
	return invoke[ListRollsResponse](ctx, c.cc, DiceService_ListRolls_FullMethodName, in, opts)
}

// VitaeService method names
const (
	VitaeService_IncreaseHunger_FullMethodName      = "/" + ServicePrefix + "VitaeService/IncreaseHunger"
	VitaeService_DecreaseHunger_FullMethodName      = "/" + ServicePrefix + "VitaeService/DecreaseHunger"
	VitaeService_SlakeHunger_FullMethodName         = "/" + ServicePrefix + "VitaeService/SlakeHunger"
	VitaeService_RouseCheck_FullMethodName          = "/" + ServicePrefix + "VitaeService/RouseCheck"
	VitaeService_MultipleRouseChecks_FullMethodName = "/" + ServicePrefix + "VitaeService/MultipleRouseChecks"
	VitaeService_FrenzyCheck_FullMethodName         = "/" + ServicePrefix + "VitaeService/FrenzyCheck"
	VitaeService_ResistFrenzy_FullMethodName        = "/" + ServicePrefix + "VitaeService/ResistFrenzy"
	VitaeService_RideTheWave_FullMethodName         = "/" + ServicePrefix + "VitaeService/RideTheWave"
	VitaeService_GetBloodPotency_FullMethodName     = "/" + ServicePrefix + "VitaeService/GetBloodPotency"
	VitaeService_ListBloodPotency_FullMethodName    = "/" + ServicePrefix + "VitaeService/ListBloodPotency"
	VitaeService_GetGeneration_FullMethodName       = "/" + ServicePrefix + "VitaeService/GetGeneration"
	VitaeService_SpendBlood_FullMethodName          = "/" + ServicePrefix + "VitaeService/SpendBlood"
	VitaeService_GainBlood_FullMethodName           = "/" + ServicePrefix + "VitaeService/GainBlood"
	VitaeService_HealDamage_FullMethodName          = "/" + ServicePrefix + "VitaeService/HealDamage"
	VitaeService_BoostAttribute_FullMethodName      = "/" + ServicePrefix + "VitaeService/BoostAttribute"
	VitaeService_GetDaytimePenalty_FullMethodName   = "/" + ServicePrefix + "VitaeService/GetDaytimePenalty"
)

// VitaeServiceServer is the server API for VitaeService
type VitaeServiceServer interface {
	IncreaseHunger(context.Context, *IncreaseHungerRequest) (*HungerResponse, error)
	DecreaseHunger(context.Context, *DecreaseHungerRequest) (*HungerResponse, error)
	SlakeHunger(context.Context, *SlakeHungerRequest) (*HungerResponse, error)
	RouseCheck(context.Context, *RouseCheckRequest) (*RouseCheckResponse, error)
	MultipleRouseChecks(context.Context, *MultipleRouseChecksRequest) (*MultipleRouseChecksResponse, error)
	FrenzyCheck(context.Context, *FrenzyCheckRequest) (*FrenzyRollResponse, error)
	ResistFrenzy(context.Context, *ResistFrenzyRequest) (*ResistFrenzyResponse, error)
	RideTheWave(context.Context, *RideTheWaveRequest) (*FrenzyRollResponse, error)
	GetBloodPotency(context.Context, *GetBloodPotencyRequest) (*GetBloodPotencyResponse, error)
	ListBloodPotency(context.Context, *ListBloodPotencyRequest) (*ListBloodPotencyResponse, error)
	GetGeneration(context.Context, *GetGenerationRequest) (*GetGenerationResponse, error)
	SpendBlood(context.Context, *BloodPoolRequest) (*BloodPoolResponse, error)
	GainBlood(context.Context, *BloodPoolRequest) (*BloodPoolResponse, error)
	HealDamage(context.Context, *HealDamageRequest) (*HealDamageResponse, error)
	BoostAttribute(context.Context, *BoostAttributeRequest) (*BoostAttributeResponse, error)
	GetDaytimePenalty(context.Context, *GetDaytimePenaltyRequest) (*GetDaytimePenaltyResponse, error)
}

// VitaeService_ServiceDesc is the grpc.ServiceDesc for VitaeService
var VitaeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServicePrefix + "VitaeService",
	HandlerType: (*VitaeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "IncreaseHunger", Handler: unary(VitaeServiceServer.IncreaseHunger, VitaeService_IncreaseHunger_FullMethodName)},
		{MethodName: "DecreaseHunger", Handler: unary(VitaeServiceServer.DecreaseHunger, VitaeService_DecreaseHunger_FullMethodName)},
		{MethodName: "SlakeHunger", Handler: unary(VitaeServiceServer.SlakeHunger, VitaeService_SlakeHunger_FullMethodName)},
		{MethodName: "RouseCheck", Handler: unary(VitaeServiceServer.RouseCheck, VitaeService_RouseCheck_FullMethodName)},
		{MethodName: "MultipleRouseChecks", Handler: unary(VitaeServiceServer.MultipleRouseChecks, VitaeService_MultipleRouseChecks_FullMethodName)},
		{MethodName: "FrenzyCheck", Handler: unary(VitaeServiceServer.FrenzyCheck, VitaeService_FrenzyCheck_FullMethodName)},
		{MethodName: "ResistFrenzy", Handler: unary(VitaeServiceServer.ResistFrenzy, VitaeService_ResistFrenzy_FullMethodName)},
		{MethodName: "RideTheWave", Handler: unary(VitaeServiceServer.RideTheWave, VitaeService_RideTheWave_FullMethodName)},
		{MethodName: "GetBloodPotency", Handler: unary(VitaeServiceServer.GetBloodPotency, VitaeService_GetBloodPotency_FullMethodName)},
		{MethodName: "ListBloodPotency", Handler: unary(VitaeServiceServer.ListBloodPotency, VitaeService_ListBloodPotency_FullMethodName)},
		{MethodName: "GetGeneration", Handler: unary(VitaeServiceServer.GetGeneration, VitaeService_GetGeneration_FullMethodName)},
		{MethodName: "SpendBlood", Handler: unary(VitaeServiceServer.SpendBlood, VitaeService_SpendBlood_FullMethodName)},
		{MethodName: "GainBlood", Handler: unary(VitaeServiceServer.GainBlood, VitaeService_GainBlood_FullMethodName)},
		{MethodName: "HealDamage", Handler: unary(VitaeServiceServer.HealDamage, VitaeService_HealDamage_FullMethodName)},
		{MethodName: "BoostAttribute", Handler: unary(VitaeServiceServer.BoostAttribute, VitaeService_BoostAttribute_FullMethodName)},
		{MethodName: "GetDaytimePenalty", Handler: unary(VitaeServiceServer.GetDaytimePenalty, VitaeService_GetDaytimePenalty_FullMethodName)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterVitaeServiceServer registers srv with s
func RegisterVitaeServiceServer(s grpc.ServiceRegistrar, srv VitaeServiceServer) {
	s.RegisterService(&VitaeService_ServiceDesc, srv)
}

// VitaeServiceClient is the client API for VitaeService
type VitaeServiceClient interface {
	IncreaseHunger(ctx context.Context, in *IncreaseHungerRequest, opts ...grpc.CallOption) (*HungerResponse, error)
	DecreaseHunger(ctx context.Context, in *DecreaseHungerRequest, opts ...grpc.CallOption) (*HungerResponse, error)
	SlakeHunger(ctx context.Context, in *SlakeHungerRequest, opts ...grpc.CallOption) (*HungerResponse, error)
	RouseCheck(ctx context.Context, in *RouseCheckRequest, opts ...grpc.CallOption) (*RouseCheckResponse, error)
	MultipleRouseChecks(ctx context.Context, in *MultipleRouseChecksRequest, opts ...grpc.CallOption) (*MultipleRouseChecksResponse, error)
	FrenzyCheck(ctx context.Context, in *FrenzyCheckRequest, opts ...grpc.CallOption) (*FrenzyRollResponse, error)
	ResistFrenzy(ctx context.Context, in *ResistFrenzyRequest, opts ...grpc.CallOption) (*ResistFrenzyResponse, error)
	RideTheWave(ctx context.Context, in *RideTheWaveRequest, opts ...grpc.CallOption) (*FrenzyRollResponse, error)
	GetBloodPotency(ctx context.Context, in *GetBloodPotencyRequest, opts ...grpc.CallOption) (*GetBloodPotencyResponse, error)
	ListBloodPotency(ctx context.Context, in *ListBloodPotencyRequest, opts ...grpc.CallOption) (*ListBloodPotencyResponse, error)
	GetGeneration(ctx context.Context, in *GetGenerationRequest, opts ...grpc.CallOption) (*GetGenerationResponse, error)
	SpendBlood(ctx context.Context, in *BloodPoolRequest, opts ...grpc.CallOption) (*BloodPoolResponse, error)
	GainBlood(ctx context.Context, in *BloodPoolRequest, opts ...grpc.CallOption) (*BloodPoolResponse, error)
	HealDamage(ctx context.Context, in *HealDamageRequest, opts ...grpc.CallOption) (*HealDamageResponse, error)
	BoostAttribute(ctx context.Context, in *BoostAttributeRequest, opts ...grpc.CallOption) (*BoostAttributeResponse, error)
	GetDaytimePenalty(ctx context.Context, in *GetDaytimePenaltyRequest, opts ...grpc.CallOption) (*GetDaytimePenaltyResponse, error)
}

type vitaeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewVitaeServiceClient creates a client that speaks JSON to VitaeService
func NewVitaeServiceClient(cc grpc.ClientConnInterface) VitaeServiceClient {
	return &vitaeServiceClient{cc: cc}
}

func (c *vitaeServiceClient) IncreaseHunger(ctx context.Context, in *IncreaseHungerRequest, opts ...grpc.CallOption) (*HungerResponse, error) {
	return invoke[HungerResponse](ctx, c.cc, VitaeService_IncreaseHunger_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) DecreaseHunger(ctx context.Context, in *DecreaseHungerRequest, opts ...grpc.CallOption) (*HungerResponse, error) {
	return invoke[HungerResponse](ctx, c.cc, VitaeService_DecreaseHunger_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) SlakeHunger(ctx context.Context, in *SlakeHungerRequest, opts ...grpc.CallOption) (*HungerResponse, error) {
	return invoke[HungerResponse](ctx, c.cc, VitaeService_SlakeHunger_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) RouseCheck(ctx context.Context, in *RouseCheckRequest, opts ...grpc.CallOption) (*RouseCheckResponse, error) {
	return invoke[RouseCheckResponse](ctx, c.cc, VitaeService_RouseCheck_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) MultipleRouseChecks(ctx context.Context, in *MultipleRouseChecksRequest, opts ...grpc.CallOption) (*MultipleRouseChecksResponse, error) {
	return invoke[MultipleRouseChecksResponse](ctx, c.cc, VitaeService_MultipleRouseChecks_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) FrenzyCheck(ctx context.Context, in *FrenzyCheckRequest, opts ...grpc.CallOption) (*FrenzyRollResponse, error) {
	return invoke[FrenzyRollResponse](ctx, c.cc, VitaeService_FrenzyCheck_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) ResistFrenzy(ctx context.Context, in *ResistFrenzyRequest, opts ...grpc.CallOption) (*ResistFrenzyResponse, error) {
	return invoke[ResistFrenzyResponse](ctx, c.cc, VitaeService_ResistFrenzy_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) RideTheWave(ctx context.Context, in *RideTheWaveRequest, opts ...grpc.CallOption) (*FrenzyRollResponse, error) {
	return invoke[FrenzyRollResponse](ctx, c.cc, VitaeService_RideTheWave_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) GetBloodPotency(ctx context.Context, in *GetBloodPotencyRequest, opts ...grpc.CallOption) (*GetBloodPotencyResponse, error) {
	return invoke[GetBloodPotencyResponse](ctx, c.cc, VitaeService_GetBloodPotency_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) ListBloodPotency(ctx context.Context, in *ListBloodPotencyRequest, opts ...grpc.CallOption) (*ListBloodPotencyResponse, error) {
	return invoke[ListBloodPotencyResponse](ctx, c.cc, VitaeService_ListBloodPotency_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) GetGeneration(ctx context.Context, in *GetGenerationRequest, opts ...grpc.CallOption) (*GetGenerationResponse, error) {
	return invoke[GetGenerationResponse](ctx, c.cc, VitaeService_GetGeneration_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) SpendBlood(ctx context.Context, in *BloodPoolRequest, opts ...grpc.CallOption) (*BloodPoolResponse, error) {
	return invoke[BloodPoolResponse](ctx, c.cc, VitaeService_SpendBlood_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) GainBlood(ctx context.Context, in *BloodPoolRequest, opts ...grpc.CallOption) (*BloodPoolResponse, error) {
	return invoke[BloodPoolResponse](ctx, c.cc, VitaeService_GainBlood_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) HealDamage(ctx context.Context, in *HealDamageRequest, opts ...grpc.CallOption) (*HealDamageResponse, error) {
	return invoke[HealDamageResponse](ctx, c.cc, VitaeService_HealDamage_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) BoostAttribute(ctx context.Context, in *BoostAttributeRequest, opts ...grpc.CallOption) (*BoostAttributeResponse, error) {
	return invoke[BoostAttributeResponse](ctx, c.cc, VitaeService_BoostAttribute_FullMethodName, in, opts)
}

func (c *vitaeServiceClient) GetDaytimePenalty(ctx context.Context, in *GetDaytimePenaltyRequest, opts ...grpc.CallOption) (*GetDaytimePenaltyResponse, error) {
	return invoke[GetDaytimePenaltyResponse](ctx, c.cc, VitaeService_GetDaytimePenalty_FullMethodName, in, opts)
}

// InitiativeService method names
const (
	InitiativeService_StartCombat_FullMethodName     = "/" + ServicePrefix + "InitiativeService/StartCombat"
	InitiativeService_AddCombatant_FullMethodName    = "/" + ServicePrefix + "InitiativeService/AddCombatant"
	InitiativeService_RemoveCombatant_FullMethodName = "/" + ServicePrefix + "InitiativeService/RemoveCombatant"
	InitiativeService_UpdateCombatant_FullMethodName = "/" + ServicePrefix + "InitiativeService/UpdateCombatant"
	InitiativeService_RollInitiative_FullMethodName  = "/" + ServicePrefix + "InitiativeService/RollInitiative"
	InitiativeService_AdvanceTurn_FullMethodName     = "/" + ServicePrefix + "InitiativeService/AdvanceTurn"
	InitiativeService_EndCombat_FullMethodName       = "/" + ServicePrefix + "InitiativeService/EndCombat"
	InitiativeService_GetOrder_FullMethodName        = "/" + ServicePrefix + "InitiativeService/GetOrder"
	InitiativeService_GetActiveOrder_FullMethodName  = "/" + ServicePrefix + "InitiativeService/GetActiveOrder"
	InitiativeService_DeleteOrder_FullMethodName     = "/" + ServicePrefix + "InitiativeService/DeleteOrder"
)

// InitiativeServiceServer is the server API for InitiativeService
type InitiativeServiceServer interface {
	StartCombat(context.Context, *StartCombatRequest) (*OrderResponse, error)
	AddCombatant(context.Context, *AddCombatantRequest) (*CombatantResponse, error)
	RemoveCombatant(context.Context, *RemoveCombatantRequest) (*OrderResponse, error)
	UpdateCombatant(context.Context, *UpdateCombatantRequest) (*CombatantResponse, error)
	RollInitiative(context.Context, *OrderRequest) (*RollInitiativeResponse, error)
	AdvanceTurn(context.Context, *OrderRequest) (*AdvanceTurnResponse, error)
	EndCombat(context.Context, *OrderRequest) (*OrderResponse, error)
	GetOrder(context.Context, *OrderRequest) (*OrderResponse, error)
	GetActiveOrder(context.Context, *GetActiveOrderRequest) (*OrderResponse, error)
	DeleteOrder(context.Context, *OrderRequest) (*DeleteOrderResponse, error)
}

// InitiativeService_ServiceDesc is the grpc.ServiceDesc for InitiativeService
var InitiativeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServicePrefix + "InitiativeService",
	HandlerType: (*InitiativeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartCombat", Handler: unary(InitiativeServiceServer.StartCombat, InitiativeService_StartCombat_FullMethodName)},
		{MethodName: "AddCombatant", Handler: unary(InitiativeServiceServer.AddCombatant, InitiativeService_AddCombatant_FullMethodName)},
		{MethodName: "RemoveCombatant", Handler: unary(InitiativeServiceServer.RemoveCombatant, InitiativeService_RemoveCombatant_FullMethodName)},
		{MethodName: "UpdateCombatant", Handler: unary(InitiativeServiceServer.UpdateCombatant, InitiativeService_UpdateCombatant_FullMethodName)},
		{MethodName: "RollInitiative", Handler: unary(InitiativeServiceServer.RollInitiative, InitiativeService_RollInitiative_FullMethodName)},
		{MethodName: "AdvanceTurn", Handler: unary(InitiativeServiceServer.AdvanceTurn, InitiativeService_AdvanceTurn_FullMethodName)},
		{MethodName: "EndCombat", Handler: unary(InitiativeServiceServer.EndCombat, InitiativeService_EndCombat_FullMethodName)},
		{MethodName: "GetOrder", Handler: unary(InitiativeServiceServer.GetOrder, InitiativeService_GetOrder_FullMethodName)},
		{MethodName: "GetActiveOrder", Handler: unary(InitiativeServiceServer.GetActiveOrder, InitiativeService_GetActiveOrder_FullMethodName)},
		{MethodName: "DeleteOrder", Handler: unary(InitiativeServiceServer.DeleteOrder, InitiativeService_DeleteOrder_FullMethodName)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterInitiativeServiceServer registers srv with s
func RegisterInitiativeServiceServer(s grpc.ServiceRegistrar, srv InitiativeServiceServer) {
	s.RegisterService(&InitiativeService_ServiceDesc, srv)
}

// InitiativeServiceClient is the client API for InitiativeService
type InitiativeServiceClient interface {
	StartCombat(ctx context.Context, in *StartCombatRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	AddCombatant(ctx context.Context, in *AddCombatantRequest, opts ...grpc.CallOption) (*CombatantResponse, error)
	RemoveCombatant(ctx context.Context, in *RemoveCombatantRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	UpdateCombatant(ctx context.Context, in *UpdateCombatantRequest, opts ...grpc.CallOption) (*CombatantResponse, error)
	RollInitiative(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*RollInitiativeResponse, error)
	AdvanceTurn(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*AdvanceTurnResponse, error)
	EndCombat(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	GetOrder(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	GetActiveOrder(ctx context.Context, in *GetActiveOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	DeleteOrder(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*DeleteOrderResponse, error)
}

type initiativeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewInitiativeServiceClient creates a client that speaks JSON to InitiativeService
func NewInitiativeServiceClient(cc grpc.ClientConnInterface) InitiativeServiceClient {
	return &initiativeServiceClient{cc: cc}
}

func (c *initiativeServiceClient) StartCombat(ctx context.Context, in *StartCombatRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	return invoke[OrderResponse](ctx, c.cc, InitiativeService_StartCombat_FullMethodName, in, opts)
}

func (c *initiativeServiceClient) AddCombatant(ctx context.Context, in *AddCombatantRequest, opts ...grpc.CallOption) (*CombatantResponse, error) {
	return invoke[CombatantResponse](ctx, c.cc, InitiativeService_AddCombatant_FullMethodName, in, opts)
}

func (c *initiativeServiceClient) RemoveCombatant(ctx context.Context, in *RemoveCombatantRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	return invoke[OrderResponse](ctx, c.cc, InitiativeService_RemoveCombatant_FullMethodName, in, opts)
}

func (c *initiativeServiceClient) UpdateCombatant(ctx context.Context, in *UpdateCombatantRequest, opts ...grpc.CallOption) (*CombatantResponse, error) {
	return invoke[CombatantResponse](ctx, c.cc, InitiativeService_UpdateCombatant_FullMethodName, in, opts)
}

func (c *initiativeServiceClient) RollInitiative(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*RollInitiativeResponse, error) {
	return invoke[RollInitiativeResponse](ctx, c.cc, InitiativeService_RollInitiative_FullMethodName, in, opts)
}

func (c *initiativeServiceClient) AdvanceTurn(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*AdvanceTurnResponse, error) {
	return invoke[AdvanceTurnResponse](ctx, c.cc, InitiativeService_AdvanceTurn_FullMethodName, in, opts)
}

func (c *initiativeServiceClient) EndCombat(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	return invoke[OrderResponse](ctx, c.cc, InitiativeService_EndCombat_FullMethodName, in, opts)
}

func (c *initiativeServiceClient) GetOrder(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	return invoke[OrderResponse](ctx, c.cc, InitiativeService_GetOrder_FullMethodName, in, opts)
}

func (c *initiativeServiceClient) GetActiveOrder(ctx context.Context, in *GetActiveOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	return invoke[OrderResponse](ctx, c.cc, InitiativeService_GetActiveOrder_FullMethodName, in, opts)
}

func (c *initiativeServiceClient) DeleteOrder(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*DeleteOrderResponse, error) {
	return invoke[DeleteOrderResponse](ctx, c.cc, InitiativeService_DeleteOrder_FullMethodName, in, opts)
}
