package art

import "strings"

// Default logo, a snail. Variants let the layout ladder pick the largest
// one the terminal can host.
const (
	logoWide = `{6}            ____  ____
{6}           /    \/    \
{6}          /  /\    /\  \
{6}   {3}__    {6}|  |  \__/  |  |
{3}  /  \\   {6}|  \  ____  /  |
{3} |    \\   {6}\   \/    \/  /
{3} |     \\{3}___{6}\__________/{3}_
{3}  \                      \
{3}   \______________________\`

	logoMedium = `{6}       ____
{6}      /    \
{3} __   {6}| /\ |
{3}/  \\ {6}\ \/ /
{3}|   \\{3}__{6}\__/{3}_
{3} \___________\`

	logoNarrow = `{3} _
{3}( \ {6}__
{3} \ {6}/  \
{3} _{6}| /\ |
{3}(__{6}\__/{3})`

	logoSmol = `{3}_{6}/\
{3}\{6}\/{3}/`
)

// OS logos. Substring matching on the detected or requested name follows
// the original tool: "CachyOS Linux x86_64" still matches cachyos.
const (
	logoArch = `{6}        /\
{6}       /  \
{6}      /    \
{6}     /  {7}/\{6}  \
{6}    /  {7}/  \{6}  \
{6}   /  {7}/ {6}/\ {7}\{6}  \
{6}  /__{7}/ {6}/  \ {7}\{6}__\
{7}     /_/    \_\`

	logoArchSmol = `{6}  /\
{6} /{7}/\{6}\
{6}/{7}/ {6}\{7}\{6}\`

	logoCachy = `{4}      ___
{4}     /   \___
{4}    / /\     \
{4}   / /  \_____\
{4}  / /   /     /
{4}  \ \   \____/
{4}   \ \      ___
{4}    \ \____/   \
{4}     \_________/`

	logoCachySmol = `{4} ___
{4}/ __\
{4}\ \__
{4} \___/`

	logoFedora = `{5}      _____
{5}     /   {8}__{5} \
{5}    /   {8}/  \{5} \
{5}   /   {8}/{5} ___{8}_{5}/
{5}  /   {8}/__/{5}  /
{5} /   {8}/  {5}   /
{5}/ {8}__/{5}    /
{5}\{8}/__{5}____/`

	logoFedoraSmol = `{5} _{8}_
{5}/{8}/_
{8}/{5}_/`

	logoUbuntu = `{2}          _
{2}      ---(_)
{2}  _/  ---  \
{2} (_) |   |
{2}   \  --- _/
{2}      ---(_)`

	logoUbuntuSmol = `{2} -{2}(_)
{2}(_)|
{2} -(_)`

	logoNix = `{5}   \\  \\ //
{5}  ==\\__\\/ //
{5}    //   \\//
{5} ==//     //==
{5}  //\\___//
{5} // /\\  \\==
{5}   // \\  \\`

	logoNixSmol = `{5}\\_\\/
{5}/\\ \\
{5}\\ \\/
{5}/_/\\`
)

// DefaultSet is the built-in logo with its size ladder, widest first.
type DefaultSet struct {
	Wide   *GlyphArt
	Medium *GlyphArt
	Narrow *GlyphArt
	Smol   *GlyphArt
}

// Default returns the built-in snail logo in all sizes.
func Default() DefaultSet {
	return DefaultSet{
		Wide:   Parse(logoWide),
		Medium: Parse(logoMedium),
		Narrow: Parse(logoNarrow),
		Smol:   Parse(logoSmol),
	}
}

type osLogo struct {
	match []string
	full  string
	smol  string
}

var osLogos = []osLogo{
	// cachyos before arch: a CachyOS banner also contains no "arch", but
	// keep the more specific names first regardless.
	{match: []string{"cachyos", "cachy"}, full: logoCachy, smol: logoCachySmol},
	{match: []string{"arch"}, full: logoArch, smol: logoArchSmol},
	{match: []string{"fedora"}, full: logoFedora, smol: logoFedoraSmol},
	{match: []string{"ubuntu"}, full: logoUbuntu, smol: logoUbuntuSmol},
	{match: []string{"nixos", "nix"}, full: logoNix, smol: logoNixSmol},
}

// Lookup returns OS-specific art and its smol variant by substring match
// on the OS name. ok is false for unknown names; callers fall back to the
// default logo rather than failing.
func Lookup(osName string) (full, smol *GlyphArt, ok bool) {
	name := strings.ToLower(osName)
	for _, l := range osLogos {
		for _, m := range l.match {
			if strings.Contains(name, m) {
				return Parse(l.full), Parse(l.smol), true
			}
		}
	}
	return nil, nil, false
}
