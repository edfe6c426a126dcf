package variation

// nagText holds the notation text for NAGs 0-139. Symbolic glyphs are used
// where they are standard; the rest are short English phrases.
var nagText = [140]string{
	0:   "",
	1:   "!",
	2:   "?",
	3:   "!!",
	4:   "??",
	5:   "!?",
	6:   "?!",
	7:   "forced move",
	8:   "singular move",
	9:   "worst move",
	10:  "=",
	11:  "=",
	12:  "=",
	13:  "unclear",
	14:  "+=",
	15:  "=+",
	16:  "+/-",
	17:  "-/+",
	18:  "+-",
	19:  "-+",
	20:  "+-",
	21:  "-+",
	22:  "zugzwang",
	23:  "zugzwang",
	24:  "slight space advantage",
	25:  "slight space advantage",
	26:  "moderate space advantage",
	27:  "moderate space advantage",
	28:  "decisive space advantage",
	29:  "decisive space advantage",
	30:  "slight development advantage",
	31:  "slight development advantage",
	32:  "moderate development advantage",
	33:  "moderate development advantage",
	34:  "decisive development advantage",
	35:  "decisive development advantage",
	36:  "initiative",
	37:  "initiative",
	38:  "lasting initiative",
	39:  "lasting initiative",
	40:  "attack",
	41:  "attack",
	42:  "insufficient compensation",
	43:  "insufficient compensation",
	44:  "compensation",
	45:  "compensation",
	46:  "more than adequate compensation",
	47:  "more than adequate compensation",
	48:  "slight centre control advantage",
	49:  "slight centre control advantage",
	50:  "moderate centre control advantage",
	51:  "moderate centre control advantage",
	52:  "decisive centre control advantage",
	53:  "decisive centre control advantage",
	54:  "slight kingside control advantage",
	55:  "slight kingside control advantage",
	56:  "moderate kingside control advantage",
	57:  "moderate kingside control advantage",
	58:  "decisive kingside control advantage",
	59:  "decisive kingside control advantage",
	60:  "slight queenside control advantage",
	61:  "slight queenside control advantage",
	62:  "moderate queenside control advantage",
	63:  "moderate queenside control advantage",
	64:  "decisive queenside control advantage",
	65:  "decisive queenside control advantage",
	66:  "vulnerable first rank",
	67:  "vulnerable first rank",
	68:  "well protected first rank",
	69:  "well protected first rank",
	70:  "poorly protected king",
	71:  "poorly protected king",
	72:  "well protected king",
	73:  "well protected king",
	74:  "poorly placed king",
	75:  "poorly placed king",
	76:  "well placed king",
	77:  "well placed king",
	78:  "very weak pawn structure",
	79:  "very weak pawn structure",
	80:  "moderately weak pawn structure",
	81:  "moderately weak pawn structure",
	82:  "moderately strong pawn structure",
	83:  "moderately strong pawn structure",
	84:  "very strong pawn structure",
	85:  "very strong pawn structure",
	86:  "poor knight placement",
	87:  "poor knight placement",
	88:  "good knight placement",
	89:  "good knight placement",
	90:  "poor bishop placement",
	91:  "poor bishop placement",
	92:  "good bishop placement",
	93:  "good bishop placement",
	94:  "poor rook placement",
	95:  "poor rook placement",
	96:  "good rook placement",
	97:  "good rook placement",
	98:  "poor queen placement",
	99:  "poor queen placement",
	100: "good queen placement",
	101: "good queen placement",
	102: "poor piece coordination",
	103: "poor piece coordination",
	104: "good piece coordination",
	105: "good piece coordination",
	106: "played the opening very poorly",
	107: "played the opening very poorly",
	108: "played the opening poorly",
	109: "played the opening poorly",
	110: "played the opening well",
	111: "played the opening well",
	112: "played the opening very well",
	113: "played the opening very well",
	114: "played the middlegame very poorly",
	115: "played the middlegame very poorly",
	116: "played the middlegame poorly",
	117: "played the middlegame poorly",
	118: "played the middlegame well",
	119: "played the middlegame well",
	120: "played the middlegame very well",
	121: "played the middlegame very well",
	122: "played the ending very poorly",
	123: "played the ending very poorly",
	124: "played the ending poorly",
	125: "played the ending poorly",
	126: "played the ending well",
	127: "played the ending well",
	128: "played the ending very well",
	129: "played the ending very well",
	130: "slight counterplay",
	131: "slight counterplay",
	132: "moderate counterplay",
	133: "moderate counterplay",
	134: "decisive counterplay",
	135: "decisive counterplay",
	136: "moderate time control pressure",
	137: "moderate time control pressure",
	138: "severe time control pressure",
	139: "severe time control pressure",
}

// NAGText returns the notation text for a NAG and whether the index is
// known. Alphabetic entries come with a leading space.
func NAGText(n int) (string, bool) {
	if n < 0 || n >= len(nagText) {
		return "", false
	}
	text := nagText[n]
	if text != "" && isAlpha(text[0]) {
		text = " " + text
	}
	return text, true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
