//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cln

import "strings"

// the whitelist: high-frequency english plus the review pages' own idiom;
// anything here is never counted as ocr noise, whatever its shape

var commonwords = func() map[string]struct{} {
	const wl = `the of and a to in is was he that it his her she for on are as with they at be this have from or
	one had by word but not what all were we when your can said there use an each which do how their if will up
	other about out many then them these so some would make like him into time has look two more write go see
	number no way could people my than first water been call who oil its now find long down day did get come
	made may part over new sound take only little work know place year live me back give most very after thing
	our just name good sentence man think say great where help through much before line right too mean old any
	same tell boy follow came want show also around form three small set put end does another well large must
	big even such because turn here why ask went men read need land different home us move try kind hand picture
	again change off play spell air away animal house point page letter mother answer found study still learn
	should world high every near add food between own below country plant last school father keep tree never
	start city earth eye light thought head under story saw left dont few while along might close something seem
	next hard open example begin life always those both paper together got group often run important until
	children side feet car mile night walk white sea began grow took river four carry state once book hear stop
	without second later miss idea enough eat face watch far really almost let above girl sometimes mountain cut
	young talk soon list song being leave family music act art stage scene play actor actress audience applause
	performance theatre theater opera concert orchestra symphony conductor singer soprano tenor chorus ballet
	drama comedy tragedy critic criticism review notice beautiful beauty sublime taste genius sentiment passion
	feeling expression style manner grace charm effect impression public house evening season london paris york
	piece work author poet poetry poem verse prose novel painter painting picture exhibition gallery composer
	composition melody harmony voice tone note instrument piano violin band programme program curtain gown
	success failure triumph debut rehearsal matinee company manager director production part role character
	interpretation rendering spirited admirable excellent charming delightful exquisite wretched dull tedious
	brilliant splendid remarkable striking powerful tender pathetic graceful elegant refined vulgar crude`

	m := make(map[string]struct{})
	for _, w := range strings.Fields(wl) {
		m[w] = struct{}{}
	}
	return m
}()
