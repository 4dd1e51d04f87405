package components

import "github.com/necauqua/noita-memreader/remote"

// GameEffect identifies the kind of status effect a GameEffectComponent
// applies. Unknown values pass through unchanged, matching the
// original's open enum.
type GameEffect uint32

const (
	GameEffectNone                        GameEffect = 0
	GameEffectElectrocution                GameEffect = 1
	GameEffectFrozen                       GameEffect = 2
	GameEffectOnFire                       GameEffect = 3
	GameEffectPoison                       GameEffect = 4
	GameEffectBerserk                      GameEffect = 5
	GameEffectCharm                        GameEffect = 6
	GameEffectPolymorph                    GameEffect = 7
	GameEffectPolymorphRandom               GameEffect = 8
	GameEffectBlindness                    GameEffect = 9
	GameEffectTelepathy                    GameEffect = 10
	GameEffectTeleportation                GameEffect = 11
	GameEffectRegeneration                 GameEffect = 12
	GameEffectLevitation                   GameEffect = 13
	GameEffectMovementSlower               GameEffect = 14
	GameEffectFarts                        GameEffect = 15
	GameEffectDrunk                        GameEffect = 16
	GameEffectBreathUnderwater              GameEffect = 19
	GameEffectRadioactive                  GameEffect = 20
	GameEffectWet                          GameEffect = 21
	GameEffectOiled                        GameEffect = 22
	GameEffectBloody                       GameEffect = 23
	GameEffectSlimy                        GameEffect = 24
	GameEffectCriticalHitBoost             GameEffect = 25
	GameEffectConfusion                    GameEffect = 26
	GameEffectMeleeCounter                 GameEffect = 27
	GameEffectWormAttractor                GameEffect = 28
	GameEffectWormDetractor                GameEffect = 29
	GameEffectFoodPoisoning                GameEffect = 30
	GameEffectFriendThundermage             GameEffect = 31
	GameEffectFriendFiremage                GameEffect = 32
	GameEffectInternalFire                 GameEffect = 33
	GameEffectInternalIce                   GameEffect = 34
	GameEffectJarate                        GameEffect = 35
	GameEffectKnockback                    GameEffect = 36
	GameEffectKnockbackImmunity             GameEffect = 37
	GameEffectMovementSlower2X              GameEffect = 38
	GameEffectMovementFaster                GameEffect = 40
	GameEffectStainsDropFaster              GameEffect = 41
	GameEffectSavingGrace                   GameEffect = 42
	GameEffectDamageMultiplier               GameEffect = 43
	GameEffectHealingBlood                  GameEffect = 44
	GameEffectRespawn                       GameEffect = 45
	GameEffectProtectionFire                GameEffect = 46
	GameEffectProtectionRadioactivity        GameEffect = 47
	GameEffectProtectionExplosion            GameEffect = 48
	GameEffectProtectionMelee                GameEffect = 49
	GameEffectProtectionElectricity          GameEffect = 50
	GameEffectTeleportitis                  GameEffect = 51
	GameEffectStainlessArmour                GameEffect = 52
	GameEffectGlobalGore                    GameEffect = 53
	GameEffectEditWandsEverywhere            GameEffect = 54
	GameEffectExplodingCorpseShots           GameEffect = 55
	GameEffectExplodingCorpse                GameEffect = 56
	GameEffectExtraMoney                    GameEffect = 57
	GameEffectExtraMoneyTrickKill            GameEffect = 58
	GameEffectHoverBoost                    GameEffect = 60
	GameEffectProjectileHoming                GameEffect = 61
	GameEffectAbilityActionsMaterialized      GameEffect = 62
	GameEffectNoDamageFlash                 GameEffect = 70
	GameEffectNoSlimeSlowdown                GameEffect = 71
	GameEffectMovementFaster2X               GameEffect = 72
	GameEffectNoWandEditing                  GameEffect = 73
	GameEffectLowHpDamageBoost                GameEffect = 74
	GameEffectFasterLevitation                GameEffect = 75
	GameEffectStunProtectionElectricity       GameEffect = 76
	GameEffectStunProtectionFreeze            GameEffect = 77
	GameEffectIronStomach                    GameEffect = 78
	GameEffectProtectionAll                  GameEffect = 80
	GameEffectInvisibility                   GameEffect = 81
	GameEffectRemoveFogOfWar                  GameEffect = 82
	GameEffectManaRegeneration                GameEffect = 83
	GameEffectProtectionDuringTeleport         GameEffect = 84
	GameEffectProtectionPolymorph             GameEffect = 85
	GameEffectProtectionFreeze                GameEffect = 86
	GameEffectFrozenSpeedUp                   GameEffect = 87
	GameEffectUnstableTeleportation           GameEffect = 88
	GameEffectPolymorphUnstable               GameEffect = 89
	GameEffectCustom                         GameEffect = 90
	GameEffectAllergyRadioactive              GameEffect = 91
	GameEffectRainbowFarts                    GameEffect = 92
	GameEffectWeakness                       GameEffect = 93
	GameEffectProtectionFoodPoisoning          GameEffect = 94
	GameEffectNoHeal                         GameEffect = 95
	GameEffectProtectionEdges                 GameEffect = 96
	GameEffectProtectionProjectile            GameEffect = 97
	GameEffectPolymorphCessation               GameEffect = 98
	gameEffectLast                           GameEffect = 99
)

// Pod marks GameEffect as fixed-layout.
func (GameEffect) Pod() {}

// GameEffectComponent applies one status effect to its owning entity
// for a duration, with effect-specific parameters for the handful of
// effects that need them (polymorph target, teleportation radius...).
type GameEffectComponent struct {
	Effect                         GameEffect
	CustomEffectID                 remote.SsoString
	Frames                         int32
	ExclusivityGroup               int32
	ReportBlockMsg                 remote.ByteBool
	DisableMovement                 remote.PadBool2
	RagdollEffect                  int32
	RagdollMaterial                int32
	RagdollEffectCustomEntityFile  remote.SsoString
	RagdollFxCustomEntityApplyOnlyToLargestBody remote.PadBool3
	PolymorphTarget                remote.SsoString
	MSerializedData                remote.SsoString
	MCaster                        uint32
	MCasterHerdID                  int32
	TeleportationProbability       int32
	TeleportationDelayMinFrames    int32
	TeleportationRadiusMin         float32
	TeleportationRadiusMax         float32
	TeleportationsNum              int32
	NoHealMaxHPCap                 float64
	CausingStatusEffect            uint32
	CausedByIngestionStatusEffect  remote.ByteBool
	CausedByStains                 remote.ByteBool
	MCharmDisabledCameraBound      remote.ByteBool
	MCharmEnabledTeleporting       remote.ByteBool
	MInvisible                      remote.PadBool3
	MCounter                       int32
	MCooldown                      int32
	MIsExtension                   remote.ByteBool
	MIsSpent                        remote.PadBool2
}

// Pod marks GameEffectComponent as fixed-layout.
func (GameEffectComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (GameEffectComponent) ComponentName() string { return "GameEffectComponent" }
