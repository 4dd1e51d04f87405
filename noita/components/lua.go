package components

import "github.com/necauqua/noita-memreader/remote"

// LuaVmType selects how an entity's Lua VM is shared or recreated
// across executions.
type LuaVmType uint32

const (
	LuaVmSharedByManyComponents   LuaVmType = 0
	LuaVmCreateNewEveryExecution  LuaVmType = 1
	LuaVmOnePerComponentInstance  LuaVmType = 2
)

// Pod marks LuaVmType as fixed-layout.
func (LuaVmType) Pod() {}

// LuaComponent binds an entity's scripted callbacks to their script
// file paths, one field per distinct game event.
type LuaComponent struct {
	ScriptSourceFile                      remote.SsoString
	VMType                                LuaVmType
	ExecuteOnAdded                        remote.ByteBool
	ExecuteOnRemoved                      remote.PadBool2
	ExecuteEveryNFrame                    int32
	ExecuteTimes                          int32
	LimitHowManyTimesPerFrame              int32
	LimitToEveryNFrame                    int32
	LimitAllCallbacks                     remote.ByteBool
	RemoveAfterExecuted                   remote.ByteBool
	EnableCoroutines                      remote.ByteBool
	CallInitFunction                      remote.ByteBool
	ScriptEnabledChanged                  remote.SsoString
	ScriptDamageReceived                  remote.SsoString
	ScriptDamageAboutToBeReceived          remote.SsoString
	ScriptItemPickedUp                    remote.SsoString
	ScriptShot                            remote.SsoString
	ScriptCollisionTriggerHit             remote.SsoString
	ScriptCollisionTriggerTimerFinished   remote.SsoString
	ScriptPhysicsBodyModified             remote.SsoString
	ScriptPressurePlateChange              remote.SsoString
	ScriptInhaledMaterial                 remote.SsoString
	ScriptDeath                           remote.SsoString
	ScriptThrowItem                       remote.SsoString
	ScriptMaterialAreaCheckerFailed        remote.SsoString
	ScriptMaterialAreaCheckerSuccess       remote.SsoString
	ScriptElectricityReceiverSwitched      remote.SsoString
	ScriptElectricityReceiverElectrified   remote.SsoString
	ScriptKick                            remote.SsoString
	ScriptInteracting                     remote.SsoString
	ScriptAudioEventDead                  remote.SsoString
	ScriptWandFired                       remote.SsoString
	ScriptTeleported                      remote.SsoString
	ScriptPortalTeleportUsed              remote.SsoString
	ScriptPolymorphingTo                  remote.SsoString
	ScriptBiomeEntered                    remote.SsoString
	MLastExecutionFrame                   int32
	MTimesExecutedThisFrame               int32
	MModAppendsDone                        remote.PadBool3
	MNextExecutionTime                    int32
	MTimesExecuted                        int32
	MLuaManager                           uint32
	MPersistentValues                     int32
}

// Pod marks LuaComponent as fixed-layout.
func (LuaComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (LuaComponent) ComponentName() string { return "LuaComponent" }
