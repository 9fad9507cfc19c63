package keccak

import (
	"encoding/binary"
	"math/bits"
)

// rc holds the round constants for the iota step.
var rc = [24]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// permute applies keccak-f[1600] to a 200-byte state laid out as 25
// little-endian lanes. The explicit decode/encode keeps the byte layout
// identical on big-endian hosts.
func permute(b *[200]byte) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	keccakF1600(&a)
	for i := range a {
		binary.LittleEndian.PutUint64(b[8*i:], a[i])
	}
}

// keccakF1600 is the Keccak-f[1600] permutation with named lanes. Each loop
// iteration computes two rounds: a** -> e** and back.
//
// Lane naming: the first letter after the prefix is the row (b, g, k, m, s
// for y = 0..4), the second the column (a, e, i, o, u for x = 0..4).
func keccakF1600(st *[25]uint64) {
	var (
		ba, be, bi, bo, bu uint64
		da, de, di, do, du uint64

		eba, ebe, ebi, ebo, ebu uint64
		ega, ege, egi, ego, egu uint64
		eka, eke, eki, eko, eku uint64
		ema, eme, emi, emo, emu uint64
		esa, ese, esi, eso, esu uint64
	)

	aba, abe, abi, abo, abu := st[0], st[1], st[2], st[3], st[4]
	aga, age, agi, ago, agu := st[5], st[6], st[7], st[8], st[9]
	aka, ake, aki, ako, aku := st[10], st[11], st[12], st[13], st[14]
	ama, ame, ami, amo, amu := st[15], st[16], st[17], st[18], st[19]
	asa, ase, asi, aso, asu := st[20], st[21], st[22], st[23], st[24]

	for round := 0; round < len(rc); round += 2 {
		// round+0: a** -> e**
		ba = aba ^ aga ^ aka ^ ama ^ asa
		be = abe ^ age ^ ake ^ ame ^ ase
		bi = abi ^ agi ^ aki ^ ami ^ asi
		bo = abo ^ ago ^ ako ^ amo ^ aso
		bu = abu ^ agu ^ aku ^ amu ^ asu

		da = bu ^ bits.RotateLeft64(be, 1)
		de = ba ^ bits.RotateLeft64(bi, 1)
		di = be ^ bits.RotateLeft64(bo, 1)
		do = bi ^ bits.RotateLeft64(bu, 1)
		du = bo ^ bits.RotateLeft64(ba, 1)

		ba = aba ^ da
		be = bits.RotateLeft64(age^de, 44)
		bi = bits.RotateLeft64(aki^di, 43)
		bo = bits.RotateLeft64(amo^do, 21)
		bu = bits.RotateLeft64(asu^du, 14)
		eba = ba ^ (^be & bi) ^ rc[round]
		ebe = be ^ (^bi & bo)
		ebi = bi ^ (^bo & bu)
		ebo = bo ^ (^bu & ba)
		ebu = bu ^ (^ba & be)

		ba = bits.RotateLeft64(abo^do, 28)
		be = bits.RotateLeft64(agu^du, 20)
		bi = bits.RotateLeft64(aka^da, 3)
		bo = bits.RotateLeft64(ame^de, 45)
		bu = bits.RotateLeft64(asi^di, 61)
		ega = ba ^ (^be & bi)
		ege = be ^ (^bi & bo)
		egi = bi ^ (^bo & bu)
		ego = bo ^ (^bu & ba)
		egu = bu ^ (^ba & be)

		ba = bits.RotateLeft64(abe^de, 1)
		be = bits.RotateLeft64(agi^di, 6)
		bi = bits.RotateLeft64(ako^do, 25)
		bo = bits.RotateLeft64(amu^du, 8)
		bu = bits.RotateLeft64(asa^da, 18)
		eka = ba ^ (^be & bi)
		eke = be ^ (^bi & bo)
		eki = bi ^ (^bo & bu)
		eko = bo ^ (^bu & ba)
		eku = bu ^ (^ba & be)

		ba = bits.RotateLeft64(abu^du, 27)
		be = bits.RotateLeft64(aga^da, 36)
		bi = bits.RotateLeft64(ake^de, 10)
		bo = bits.RotateLeft64(ami^di, 15)
		bu = bits.RotateLeft64(aso^do, 56)
		ema = ba ^ (^be & bi)
		eme = be ^ (^bi & bo)
		emi = bi ^ (^bo & bu)
		emo = bo ^ (^bu & ba)
		emu = bu ^ (^ba & be)

		ba = bits.RotateLeft64(abi^di, 62)
		be = bits.RotateLeft64(ago^do, 55)
		bi = bits.RotateLeft64(aku^du, 39)
		bo = bits.RotateLeft64(ama^da, 41)
		bu = bits.RotateLeft64(ase^de, 2)
		esa = ba ^ (^be & bi)
		ese = be ^ (^bi & bo)
		esi = bi ^ (^bo & bu)
		eso = bo ^ (^bu & ba)
		esu = bu ^ (^ba & be)

		// round+1: e** -> a**
		ba = eba ^ ega ^ eka ^ ema ^ esa
		be = ebe ^ ege ^ eke ^ eme ^ ese
		bi = ebi ^ egi ^ eki ^ emi ^ esi
		bo = ebo ^ ego ^ eko ^ emo ^ eso
		bu = ebu ^ egu ^ eku ^ emu ^ esu

		da = bu ^ bits.RotateLeft64(be, 1)
		de = ba ^ bits.RotateLeft64(bi, 1)
		di = be ^ bits.RotateLeft64(bo, 1)
		do = bi ^ bits.RotateLeft64(bu, 1)
		du = bo ^ bits.RotateLeft64(ba, 1)

		ba = eba ^ da
		be = bits.RotateLeft64(ege^de, 44)
		bi = bits.RotateLeft64(eki^di, 43)
		bo = bits.RotateLeft64(emo^do, 21)
		bu = bits.RotateLeft64(esu^du, 14)
		aba = ba ^ (^be & bi) ^ rc[round+1]
		abe = be ^ (^bi & bo)
		abi = bi ^ (^bo & bu)
		abo = bo ^ (^bu & ba)
		abu = bu ^ (^ba & be)

		ba = bits.RotateLeft64(ebo^do, 28)
		be = bits.RotateLeft64(egu^du, 20)
		bi = bits.RotateLeft64(eka^da, 3)
		bo = bits.RotateLeft64(eme^de, 45)
		bu = bits.RotateLeft64(esi^di, 61)
		aga = ba ^ (^be & bi)
		age = be ^ (^bi & bo)
		agi = bi ^ (^bo & bu)
		ago = bo ^ (^bu & ba)
		agu = bu ^ (^ba & be)

		ba = bits.RotateLeft64(ebe^de, 1)
		be = bits.RotateLeft64(egi^di, 6)
		bi = bits.RotateLeft64(eko^do, 25)
		bo = bits.RotateLeft64(emu^du, 8)
		bu = bits.RotateLeft64(esa^da, 18)
		aka = ba ^ (^be & bi)
		ake = be ^ (^bi & bo)
		aki = bi ^ (^bo & bu)
		ako = bo ^ (^bu & ba)
		aku = bu ^ (^ba & be)

		ba = bits.RotateLeft64(ebu^du, 27)
		be = bits.RotateLeft64(ega^da, 36)
		bi = bits.RotateLeft64(eke^de, 10)
		bo = bits.RotateLeft64(emi^di, 15)
		bu = bits.RotateLeft64(eso^do, 56)
		ama = ba ^ (^be & bi)
		ame = be ^ (^bi & bo)
		ami = bi ^ (^bo & bu)
		amo = bo ^ (^bu & ba)
		amu = bu ^ (^ba & be)

		ba = bits.RotateLeft64(ebi^di, 62)
		be = bits.RotateLeft64(ego^do, 55)
		bi = bits.RotateLeft64(eku^du, 39)
		bo = bits.RotateLeft64(ema^da, 41)
		bu = bits.RotateLeft64(ese^de, 2)
		asa = ba ^ (^be & bi)
		ase = be ^ (^bi & bo)
		asi = bi ^ (^bo & bu)
		aso = bo ^ (^bu & ba)
		asu = bu ^ (^ba & be)
	}

	st[0], st[1], st[2], st[3], st[4] = aba, abe, abi, abo, abu
	st[5], st[6], st[7], st[8], st[9] = aga, age, agi, ago, agu
	st[10], st[11], st[12], st[13], st[14] = aka, ake, aki, ako, aku
	st[15], st[16], st[17], st[18], st[19] = ama, ame, ami, amo, amu
	st[20], st[21], st[22], st[23], st[24] = asa, ase, asi, aso, asu
}
