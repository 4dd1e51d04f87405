package discovery

import (
	"github.com/necauqua/noita-memreader/internal/peimage"
	"golang.org/x/arch/x86/x86asm"
)

// memDisp returns the bare displacement of a direct-memory operand
// (no base register, no index register, no segment override) — the
// moffs32-style addressing the engine uses for its globals, i.e. a
// literal `mov eax, [0x01234567]`.
func memDisp(arg x86asm.Arg) (uint32, bool) {
	m, ok := arg.(x86asm.Mem)
	if !ok || m.Base != 0 || m.Index != 0 || m.Segment != 0 {
		return 0, false
	}
	return uint32(m.Disp), true
}

func isReg(arg x86asm.Arg, reg x86asm.Reg) bool {
	r, ok := arg.(x86asm.Reg)
	return ok && r == reg
}

func isImm(arg x86asm.Arg) bool {
	_, ok := arg.(x86asm.Imm)
	return ok
}

func immValue(arg x86asm.Arg) (uint32, bool) {
	i, ok := arg.(x86asm.Imm)
	if !ok {
		return 0, false
	}
	return uint32(i), true
}

// callTarget resolves a CALL/JMP rel32's absolute destination.
func callTarget(d peimage.DecodedInst) (uint32, bool) {
	rel, ok := d.Inst.Args[0].(x86asm.Rel)
	if !ok {
		return 0, false
	}
	return d.Addr + uint32(d.Inst.Len) + uint32(int32(rel)), true
}

func isCall(d peimage.DecodedInst) bool { return d.Inst.Op == x86asm.CALL }
func isJmp(d peimage.DecodedInst) bool  { return d.Inst.Op == x86asm.JMP }

// nthFromEnd returns the index of the n-th matching instruction
// counting backward from the end of insts (n=1 is the last match).
func nthFromEnd(insts []peimage.DecodedInst, n int, match func(peimage.DecodedInst) bool) (int, bool) {
	count := 0
	for i := len(insts) - 1; i >= 0; i-- {
		if match(insts[i]) {
			count++
			if count == n {
				return i, true
			}
		}
	}
	return 0, false
}

// findSeedPointers implements the SetRandomSeed rule: scanning
// backward from the end of the function body, the first `add eax,
// r/m32` with a memory operand found is the ng+ count global; skipping any `add r/m32, imm8`
// stack-adjustment bridges after it, the next `mov eax, moffs32` is
// the world-seed global.
func findSeedPointers(image *peimage.ExeImage) (worldSeed, ngCount *uint32) {
	entry, ok := FindLuaAPIFn(image, "SetRandomSeed")
	if !ok {
		return nil, nil
	}
	insts := image.DecodeFn(entry)

	const (
		lookingForAdd = iota
		skippingBridges
		lookingForMov
	)
	state := lookingForAdd

	for i := len(insts) - 1; i >= 0; i-- {
		inst := insts[i].Inst

		if state == lookingForAdd {
			if inst.Op == x86asm.ADD {
				if isReg(inst.Args[0], x86asm.EAX) {
					if disp, ok := memDisp(inst.Args[1]); ok {
						v := disp
						ngCount = &v
						state = skippingBridges
					}
				}
			}
			continue
		}

		if state == skippingBridges {
			if inst.Op == x86asm.ADD && isImm(inst.Args[1]) {
				continue // stack-adjustment bridge, keep skipping
			}
			state = lookingForMov
		}

		if state == lookingForMov {
			if inst.Op == x86asm.MOV && isReg(inst.Args[0], x86asm.EAX) {
				if disp, ok := memDisp(inst.Args[1]); ok {
					v := disp
					worldSeed = &v
					return worldSeed, ngCount
				}
			}
		}
	}
	return worldSeed, ngCount
}

// findGameGlobalPointer implements the GamePrint rule: the 3rd-from-
// last CALL in the body is jumped into; inside it, the first `mov
// moffs32, eax` (no segment prefix) reveals the game-global pointer.
func findGameGlobalPointer(image *peimage.ExeImage) *uint32 {
	entry, ok := FindLuaAPIFn(image, "GamePrint")
	if !ok {
		return nil
	}
	insts := image.DecodeFn(entry)

	idx, ok := nthFromEnd(insts, 3, isCall)
	if !ok {
		return nil
	}
	target, ok := callTarget(insts[idx])
	if !ok {
		return nil
	}

	for _, d := range image.DecodeFn(target) {
		if d.Inst.Op == x86asm.MOV && isReg(d.Inst.Args[1], x86asm.EAX) {
			if disp, ok := memDisp(d.Inst.Args[0]); ok {
				v := disp
				return &v
			}
		}
	}
	return nil
}

// statsMapKeyValueOffset is the byte offset of GlobalStats.KeyValueStats
// within GlobalStats. The AddFlagPersistent rule below lands on the
// address of that inner map directly, not on GlobalStats itself, so
// callers must subtract this back off.
const statsMapKeyValueOffset = 0x18

// findStatsMapPointer implements the AddFlagPersistent rule. The
// address it returns is GlobalStats.KeyValueStats, not GlobalStats —
// see statsMapKeyValueOffset.
func findStatsMapPointer(image *peimage.ExeImage) *uint32 {
	entry, ok := FindLuaAPIFn(image, "AddFlagPersistent")
	if !ok {
		return nil
	}
	insts := image.DecodeFn(entry)

	idx, ok := nthFromEnd(insts, 2, isCall)
	if !ok {
		return nil
	}
	target, ok := callTarget(insts[idx])
	if !ok {
		return nil
	}

	progressEndingAddr, ok := image.FindString([]byte("progress_ending1"))
	if !ok {
		return nil
	}

	callee := image.DecodeFn(target)
	state := 0 // 0: looking for mov edx, imm32==progressEndingAddr; 1: looking for next call; 2: looking for mov ecx, imm32
	for _, d := range callee {
		switch state {
		case 0:
			if d.Inst.Op == x86asm.MOV && isReg(d.Inst.Args[0], x86asm.EDX) {
				if v, ok := immValue(d.Inst.Args[1]); ok && v == progressEndingAddr {
					state = 1
				}
			}
		case 1:
			if isCall(d) {
				state = 2
			}
		case 2:
			if d.Inst.Op == x86asm.MOV && isReg(d.Inst.Args[0], x86asm.ECX) {
				if v, ok := immValue(d.Inst.Args[1]); ok {
					return &v
				}
			}
		}
	}
	return nil
}

// findEntityManagerPointer implements the EntityGetParent rule: the
// first `mov ecx, [mem]` with a bare displacement is the pointer.
func findEntityManagerPointer(image *peimage.ExeImage) *uint32 {
	entry, ok := FindLuaAPIFn(image, "EntityGetParent")
	if !ok {
		return nil
	}
	for _, d := range image.DecodeFn(entry) {
		if d.Inst.Op == x86asm.MOV && isReg(d.Inst.Args[0], x86asm.ECX) {
			if disp, ok := memDisp(d.Inst.Args[1]); ok {
				v := disp
				return &v
			}
		}
	}
	return nil
}

// findEntityTagManagerPointer implements the "EntityTagManager"
// literal rule: from the PUSH site, the first `mov moffs32, eax`
// found scanning forward through the enclosing function is the
// pointer.
func findEntityTagManagerPointer(image *peimage.ExeImage) *uint32 {
	pushAddr, ok := image.FindPushStrPos([]byte("EntityTagManager"))
	if !ok {
		return nil
	}
	for _, d := range image.DecodeFn(pushAddr) {
		if d.Inst.Op == x86asm.MOV && isReg(d.Inst.Args[1], x86asm.EAX) {
			if disp, ok := memDisp(d.Inst.Args[0]); ok {
				v := disp
				return &v
			}
		}
	}
	return nil
}

// findComponentTypeManagerPointer implements the EntityGetComponent
// rule: the CALL immediately following `push eax` is jumped into;
// inside it, the first `mov eax, imm32` is the pointer.
func findComponentTypeManagerPointer(image *peimage.ExeImage) *uint32 {
	entry, ok := FindLuaAPIFn(image, "EntityGetComponent")
	if !ok {
		return nil
	}
	insts := image.DecodeFn(entry)

	var target uint32
	found := false
	for i := 0; i+1 < len(insts); i++ {
		if insts[i].Inst.Op == x86asm.PUSH && isReg(insts[i].Inst.Args[0], x86asm.EAX) && isCall(insts[i+1]) {
			if t, ok := callTarget(insts[i+1]); ok {
				target = t
				found = true
				break
			}
		}
	}
	if !found {
		return nil
	}

	for _, d := range image.DecodeFn(target) {
		if d.Inst.Op == x86asm.MOV && isReg(d.Inst.Args[0], x86asm.EAX) {
			if v, ok := immValue(d.Inst.Args[1]); ok {
				return &v
			}
		}
	}
	return nil
}

// findTranslationManagerPointer implements the GameTextGet rule:
// after the first indirect JMP (the switch dispatch), the second CALL
// is jumped into; inside it, the first `add eax, [mem]` reveals the
// pointer once its displacement is adjusted by -0x10.
func findTranslationManagerPointer(image *peimage.ExeImage) *uint32 {
	entry, ok := FindLuaAPIFn(image, "GameTextGet")
	if !ok {
		return nil
	}
	insts := image.DecodeFn(entry)

	jmpIdx := -1
	for i, d := range insts {
		if isJmp(d) {
			if _, ok := d.Inst.Args[0].(x86asm.Rel); !ok {
				jmpIdx = i // indirect jmp rm32 has a non-Rel operand
				break
			}
		}
	}
	if jmpIdx < 0 {
		return nil
	}

	calls := 0
	var target uint32
	found := false
	for i := jmpIdx + 1; i < len(insts); i++ {
		if isCall(insts[i]) {
			calls++
			if calls == 2 {
				if t, ok := callTarget(insts[i]); ok {
					target = t
					found = true
				}
				break
			}
		}
	}
	if !found {
		return nil
	}

	for _, d := range image.DecodeFn(target) {
		if d.Inst.Op == x86asm.ADD && isReg(d.Inst.Args[0], x86asm.EAX) {
			if disp, ok := memDisp(d.Inst.Args[1]); ok {
				v := disp - 0x10
				return &v
			}
		}
	}
	return nil
}

// findPlatformPointer implements the
// GameGetRealWorldTimeSinceStarted rule: the last `mov ecx, imm32` in
// the body is the pointer.
func findPlatformPointer(image *peimage.ExeImage) *uint32 {
	entry, ok := FindLuaAPIFn(image, "GameGetRealWorldTimeSinceStarted")
	if !ok {
		return nil
	}
	insts := image.DecodeFn(entry)

	for i := len(insts) - 1; i >= 0; i-- {
		d := insts[i].Inst
		if d.Op == x86asm.MOV && isReg(d.Args[0], x86asm.ECX) {
			if v, ok := immValue(d.Args[1]); ok {
				return &v
			}
		}
	}
	return nil
}
