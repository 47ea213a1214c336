package i18n

import "github.com/georgepadayatti/goades/ades"

// english is the built-in catalog. Answers of a question tag are stored
// under the question tag plus "_ANS".
var english = map[ades.MessageTag]string{
	ades.ICSSigningCertificateIdentified:          "Is there an identified candidate for the signing certificate?",
	ades.ICSSigningCertificateIdentified.Answer(): "There is no candidate for the signing certificate!",
	ades.ICSSigningCertificateAttribute:           "Is the signed attribute: 'signing-certificate' present?",
	ades.ICSSigningCertificateAttribute.Answer():  "The signed attribute: 'signing-certificate' is absent!",
	ades.ICSCertDigestPresent:                     "Is the signed attribute: 'cert-digest' of the certificate present?",
	ades.ICSCertDigestPresent.Answer():            "The signed attribute: 'cert-digest' is absent!",
	ades.ICSCertDigestMatch:                       "Is the certificate's digest value valid?",
	ades.ICSCertDigestMatch.Answer():              "The signing certificate digest value does not match!",
	ades.ICSIssuerSerialMatch:                     "Are the issuer distinguished name and the serial number equal?",
	ades.ICSIssuerSerialMatch.Answer():            "The 'issuer-serial' attribute is absent or does not match!",

	ades.VCIPolicyKnown:              "Is the signature policy known?",
	ades.VCIPolicyKnown.Answer():     "The signature policy is not accepted by the validation policy!",
	ades.VCIPolicyAvailable:          "Is the signature policy available?",
	ades.VCIPolicyAvailable.Answer(): "The signature policy is not available!",
	ades.VCIPolicyHashMatch:          "Is the signature policy's hash match?",
	ades.VCIPolicyHashMatch.Answer(): "The signature policy's hash doesn't match the computed one!",

	ades.CVReferenceFound:                  "Is the reference data object found?",
	ades.CVReferenceFound.Answer():         "The reference data object is not found!",
	ades.CVReferenceIntact:                 "Is the reference data object intact?",
	ades.CVReferenceIntact.Answer():        "The reference data object is not intact!",
	ades.CVManifestEntryFound:              "Is the manifest entry data object found?",
	ades.CVManifestEntryFound.Answer():     "The manifest entry data object is not found!",
	ades.CVManifestEntryIntact:             "Is the manifest entry data object intact?",
	ades.CVManifestEntryIntact.Answer():    "The manifest entry data object is not intact!",
	ades.CVManifestEntryNameMatch:          "Does the manifest entry name match the document name?",
	ades.CVManifestEntryNameMatch.Answer(): "The manifest entry name does not match the document name!",
	ades.CVSignatureIntact:                 "Is the signature intact?",
	ades.CVSignatureIntact.Answer():        "The signature is not intact!",
	ades.CVImprintFound:                    "Is the timestamp message imprint data found?",
	ades.CVImprintFound.Answer():           "The timestamp message imprint data is not found!",
	ades.CVImprintIntact:                   "Is the timestamp message imprint data intact?",
	ades.CVImprintIntact.Answer():          "The timestamp message imprint data is not intact!",
	ades.CVERDataObjectFound:               "Is the evidence record data object found?",
	ades.CVERDataObjectFound.Answer():      "The evidence record data object is not found!",
	ades.CVERDataObjectIntact:              "Is the evidence record data object intact?",
	ades.CVERDataObjectIntact.Answer():     "The evidence record data object is not intact!",
	ades.CVERAnyDataObjectFound:            "Is at least one data object covered by the evidence record found?",
	ades.CVERAnyDataObjectFound.Answer():   "No data object covered by the evidence record is found!",
	ades.CVERSequenceFound:                 "Are the archive time-stamp sequence references found?",
	ades.CVERSequenceFound.Answer():        "The archive time-stamp sequence references are not found!",
	ades.CVERSequenceIntact:                "Are the archive time-stamp sequence references intact?",
	ades.CVERSequenceIntact.Answer():       "The archive time-stamp sequence references are not intact!",

	ades.FCFormat:                             "Is the expected format found?",
	ades.FCFormat.Answer():                    "The expected format is not found!",
	ades.FCContainerType:                      "Is the expected container type found?",
	ades.FCContainerType.Answer():             "The expected container type is not found!",
	ades.FCZipCommentPresent:                  "Is the zip comment present?",
	ades.FCZipCommentPresent.Answer():         "The zip comment is absent!",
	ades.FCZipComment:                         "Is the expected zip comment found?",
	ades.FCZipComment.Answer():                "The expected zip comment is not found!",
	ades.FCMimeTypePresent:                    "Is the mimetype file present?",
	ades.FCMimeTypePresent.Answer():           "The mimetype file is absent!",
	ades.FCMimeTypeContent:                    "Is the expected mimetype content found?",
	ades.FCMimeTypeContent.Answer():           "The expected mimetype content is not found!",
	ades.FCManifestASiCE:                      "Is the manifest file present (ASiC-E)?",
	ades.FCManifestASiCE.Answer():             "The manifest file is absent!",
	ades.FCManifestASiCS:                      "Does the ASiC-S container contain no signature manifest?",
	ades.FCManifestASiCS.Answer():             "The ASiC-S container contains a signature manifest!",
	ades.FCAllFilesSigned:                     "Are all files signed?",
	ades.FCAllFilesSigned.Answer():            "Not all files are covered by the signature!",
	ades.FCPDFAProfile:                        "Is the PDF/A profile acceptable?",
	ades.FCPDFAProfile.Answer():               "The PDF/A profile is not acceptable!",
	ades.FCPDFACompliant:                      "Is the document PDF/A compliant?",
	ades.FCPDFACompliant.Answer():             "The document is not compliant to the PDF/A specification!",
	ades.FCUndefinedChanges:                   "Is the signed content free of undefined object modifications?",
	ades.FCUndefinedChanges.Answer():          "The signed content contains undefined object modifications!",
	ades.FCEllipticCurveKeySize:               "Is the elliptic curve key size consistent with the digest algorithm?",
	ades.FCEllipticCurveKeySize.Answer():      "The elliptic curve key size is not consistent with the digest algorithm!",
	ades.FCAtsHashIndex:                       "Is the ats-hash-index attribute valid?",
	ades.FCAtsHashIndex.Answer():              "The ats-hash-index attribute is not valid!",
	ades.FCSignedAndTimestampedFiles:          "Are all signed and timestamped files covered by the object?",
	ades.FCSignedAndTimestampedFiles.Answer(): "Not all signed or timestamped files are covered by the object!",
	ades.FCSignedFilesCovered:                 "Are the files signed by the covered signatures covered by the evidence record?",
	ades.FCSignedFilesCovered.Answer():        "The evidence record does not cover all files signed by the covered signatures!",

	ades.SAVStructure:                     "Is the structure of the signature valid?",
	ades.SAVStructure.Answer():            "The structure of the signature is not valid!",
	ades.SAVSigningTime:                   "Is signed qualifying property: 'signing-time' present?",
	ades.SAVSigningTime.Answer():          "The signed qualifying property: 'signing-time' is not present!",
	ades.SAVContentType:                   "Is signed qualifying property: 'content-type' acceptable?",
	ades.SAVContentType.Answer():          "The signed qualifying property: 'content-type' is not acceptable!",
	ades.SAVCommitmentType:                "Is signed qualifying property: 'commitment-type-indication' acceptable?",
	ades.SAVCommitmentType.Answer():       "The signed qualifying property: 'commitment-type-indication' is not acceptable!",
	ades.SAVClaimedRole:                   "Is the requested claimed role present?",
	ades.SAVClaimedRole.Answer():          "The requested claimed role is not present!",
	ades.SAVCertifiedRole:                 "Is the requested certified role present?",
	ades.SAVCertifiedRole.Answer():        "The requested certified role is not present!",
	ades.SAVSignerLocation:                "Is signed qualifying property: 'signer-location' present?",
	ades.SAVSignerLocation.Answer():       "The signed qualifying property: 'signer-location' is not present!",
	ades.SAVContentTimestamp:              "Is signed qualifying property: 'content-timestamp' present?",
	ades.SAVContentTimestamp.Answer():     "The signed qualifying property: 'content-timestamp' is not present!",
	ades.SAVUniqueSigningCertRef:          "Is the signing certificate reference unique?",
	ades.SAVUniqueSigningCertRef.Answer(): "More than one signing certificate reference is found!",
	ades.SAVKeyIdentifierPresent:          "Is the key identifier present?",
	ades.SAVKeyIdentifierPresent.Answer(): "The key identifier is not present!",
	ades.SAVKeyIdentifierMatch:            "Does the key identifier match the signing certificate?",
	ades.SAVKeyIdentifierMatch.Answer():   "The key identifier does not match the signing certificate!",

	ades.CryptoConstraintsMet:       "Are cryptographic constraints met for the %s?",
	ades.CryptoEncryptionNotAllowed: "The encryption algorithm %s is not authorised for the %s!",
	ades.CryptoDigestNotAllowed:     "The digest algorithm %s is not authorised for the %s!",
	ades.CryptoKeySizeTooSmall:      "The key size %s is too small for the %s!",
	ades.CryptoAlgorithmNotReliable: "The algorithm %s is no longer considered reliable for the %s at %s!",

	ades.PositionSignature:          "signature",
	ades.PositionTimestamp:          "timestamp signature",
	ades.PositionRevocation:         "revocation data signature",
	ades.PositionCertificate:        "certificate signature",
	ades.PositionSigningCertRef:     "signing certificate reference",
	ades.PositionSignedDataObject:   "signed data object reference",
	ades.PositionManifestEntry:      "manifest entry",
	ades.PositionMessageImprint:     "message imprint",
	ades.PositionEvidenceRecordHash: "evidence record hash tree",

	ades.XCVChainBuilt:                    "Can the certificate chain be built till a trust anchor?",
	ades.XCVChainBuilt.Answer():           "The certificate chain is not trusted, it does not contain a trust anchor.",
	ades.XCVSubConclusive:                 "Is the certificate validation conclusive?",
	ades.XCVSubConclusive.Answer():        "The certificate validation is not conclusive!",
	ades.XCVSunsetDate:                    "Is the validation time before the trust anchor's sunset date?",
	ades.XCVSunsetDate.Answer():           "The trust anchor has reached its sunset date!",
	ades.XCVSerialPresent:                 "Is the certificate's serial number present?",
	ades.XCVSerialPresent.Answer():        "The certificate's serial number is not present!",
	ades.XCVKeyUsage:                      "Has the certificate given key-usage?",
	ades.XCVKeyUsage.Answer():             "The certificate has not expected key-usage!",
	ades.XCVExtendedKeyUsage:              "Has the certificate given extended key-usage?",
	ades.XCVExtendedKeyUsage.Answer():     "The certificate has not expected extended key-usage!",
	ades.XCVPolicyIDs:                     "Does the certificate contain the required policy identifiers?",
	ades.XCVPolicyIDs.Answer():            "The certificate does not contain the required policy identifiers!",
	ades.XCVNotSelfSigned:                 "Is the certificate not self-signed?",
	ades.XCVNotSelfSigned.Answer():        "The certificate is self-signed!",
	ades.XCVCertSignatureIntact:           "Is the certificate's signature intact?",
	ades.XCVCertSignatureIntact.Answer():  "The signature of the certificate is spoiled or it is not possible to validate it!",
	ades.XCVCACertificate:                 "Is the certificate a CA?",
	ades.XCVCACertificate.Answer():        "The certificate is not a CA!",
	ades.XCVOCSPNoCheck:                   "The certificate has the id-pkix-ocsp-nocheck extension (revocation check is skipped)",
	ades.XCVRevocationPresent:             "Is the revocation data present for the certificate?",
	ades.XCVRevocationPresent.Answer():    "No revocation data for the certificate!",
	ades.XCVAcceptableRevocation:          "Is an acceptable revocation data present for the certificate?",
	ades.XCVAcceptableRevocation.Answer(): "No acceptable revocation data for the certificate!",
	ades.XCVNotOnHold:                     "Is the certificate not on hold?",
	ades.XCVNotOnHold.Answer():            "The certificate is on hold!",
	ades.XCVNotRevoked:                    "Is the certificate not revoked?",
	ades.XCVNotRevoked.Answer():           "The certificate is revoked!",
	ades.XCVRevocationFreshness:           "Is the revocation freshness check conclusive?",
	ades.XCVRevocationFreshness.Answer():  "The revocation freshness check is not conclusive!",
	ades.XCVValidityRange:                 "Is the validation time in the validity range of the certificate?",
	ades.XCVValidityRange.Answer():        "The validation time is not in the validity range of the certificate!",
	ades.XCVRevocationConsistent:          "Is the revocation data consistent?",
	ades.XCVRevocationConsistent.Answer(): "The revocation data is not consistent!",

	ades.RACIssuerValidAtProduction:          "Is the revocation issuer valid at the revocation production time?",
	ades.RACIssuerValidAtProduction.Answer(): "The revocation issuer is not valid at the revocation production time!",
	ades.RACNotSelfIssuedOCSP:                "Is the OCSP response issued by another entity than the certificate itself?",
	ades.RACNotSelfIssuedOCSP.Answer():       "The OCSP response is self-issued!",
	ades.RACResponderIDMatch:                 "Does the OCSP responder identifier match the responder certificate?",
	ades.RACResponderIDMatch.Answer():        "The OCSP responder identifier does not match the responder certificate!",
	ades.RACNextUpdatePresent:                "Is there a Next Update defined for the revocation data?",
	ades.RACNextUpdatePresent.Answer():       "There is no Next Update defined for the revocation data!",
	ades.RACBasicValidation:                  "Is the revocation data basic validation conclusive?",
	ades.RACBasicValidation.Answer():         "The revocation data basic validation is not conclusive!",
	ades.CRSRevocationAcceptable:             "Is the revocation data %s acceptable?",
	ades.CRSRevocationAcceptable.Answer():    "The revocation data %s is not acceptable!",
	ades.RFCFresh:                            "Is the revocation information fresh for the certificate?",
	ades.RFCFresh.Answer():                   "The revocation status information is not considered as 'fresh'.",

	ades.RevocationNoThisUpdate:     "The revocation data does not contain a thisUpdate field.",
	ades.RevocationThisUpdateBefore: "The revocation thisUpdate %s is before the certificate notBefore %s.",
	ades.RevocationNotAfterAfter:    "The certificate notAfter %s is before the revocation cut-off %s and no matching certHash is present.",
	ades.RevocationIssuerNotFound:   "The revocation data issuer is not found.",
	ades.RevocationProducedAtBounds: "The revocation producedAt %s is out of the responder certificate validity range.",
	ades.RevocationConsistent:       "The revocation thisUpdate %s is in the certificate validity range %s - %s.",
	ades.RevocationCertHashOK:       "The revocation certHash matches the certificate.",
	ades.RevocationConsistentCRL:    "The revocation thisUpdate %s is in the certificate validity range %s - %s (expiredCertsOnCRL %s).",
	ades.RevocationConsistentOCSP:   "The revocation thisUpdate %s is in the certificate validity range %s - %s (archiveCutOff %s).",
	ades.RevocationConsistentTL:     "The revocation thisUpdate %s is in the certificate validity range %s - %s (expiredCertsRevocationInfo %s).",

	ades.BSVFormatChecking:               "Is the result of the 'Format Checking' building block conclusive?",
	ades.BSVFormatChecking.Answer():      "The result of the 'Format Checking' building block is not conclusive!",
	ades.BSVIdentification:               "Is the result of the 'Identification of the Signing Certificate' building block conclusive?",
	ades.BSVIdentification.Answer():      "The result of the 'Identification of the Signing Certificate' building block is not conclusive!",
	ades.BSVValidationContext:            "Is the result of the 'Validation Context Initialization' building block conclusive?",
	ades.BSVValidationContext.Answer():   "The result of the 'Validation Context Initialization' building block is not conclusive!",
	ades.BSVCryptographic:                "Is the result of the 'Cryptographic Verification' building block conclusive?",
	ades.BSVCryptographic.Answer():       "The result of the 'Cryptographic Verification' building block is not conclusive!",
	ades.BSVCertificateChain:             "Is the result of the 'X.509 Certificate Validation' building block conclusive?",
	ades.BSVCertificateChain.Answer():    "The result of the 'X.509 Certificate Validation' building block is not conclusive!",
	ades.BSVSignatureAcceptance:          "Is the result of the 'Signature Acceptance Validation' building block conclusive?",
	ades.BSVSignatureAcceptance.Answer(): "The result of the 'Signature Acceptance Validation' building block is not conclusive!",

	ades.LTVBasicAcceptable:                  "Is the result of the Basic Validation Process acceptable?",
	ades.LTVBasicAcceptable.Answer():         "The result of the Basic validation process is not acceptable to continue the process!",
	ades.LTVTimestampConclusive:              "Is the timestamp %s validation conclusive?",
	ades.LTVTimestampConclusive.Answer():     "The timestamp %s validation is not conclusive!",
	ades.LTVRevocationAfterBST:               "Is revocation time posterior to best-signature-time?",
	ades.LTVRevocationAfterBST.Answer():      "The revocation time is not posterior to best-signature-time!",
	ades.LTVBSTAfterIssuance:                 "Is the best-signature-time not before the issuance date of the signing certificate?",
	ades.LTVBSTAfterIssuance.Answer():        "The best-signature-time is before the issuance date of the signing certificate!",
	ades.LTVBSTBeforeExpiration:              "Is the best-signature-time before the expiration date of the signing certificate?",
	ades.LTVBSTBeforeExpiration.Answer():     "The best-signature-time is not before the expiration date of the signing certificate!",
	ades.LTVAlgorithmsReliableAtBST:          "Were the algorithms considered reliable at best-signature-time?",
	ades.LTVAlgorithmsReliableAtBST.Answer(): "The algorithms were not considered reliable at best-signature-time!",
	ades.LTVBSTBeforeSuspension:              "Is the best-signature-time before the suspension time of the certificate?",
	ades.LTVBSTBeforeSuspension.Answer():     "The best-signature-time is not before the suspension time of the certificate!",
	ades.LTVRevocationFreshAtBST:             "Is the revocation information fresh at the best-signature-time?",
	ades.LTVRevocationFreshAtBST.Answer():    "The revocation information is not fresh at the best-signature-time!",
	ades.LTVKnownNotRevoked:                  "Is the signing certificate known not to be revoked?",
	ades.LTVKnownNotRevoked.Answer():         "The revocation status of the signing certificate is not known!",
	ades.LTVTimestampOrder:                   "Are timestamps in the right order?",
	ades.LTVTimestampOrder.Answer():          "The timestamps were not generated in the right order!",
	ades.LTVSigningTimeDelay:                 "Is the signing-time plus the timestamp delay after the best-signature-time?",
	ades.LTVSigningTimeDelay.Answer():        "The validation failed due to the timestamp delay constraint!",
	ades.LTVBestSignatureTimeInfo:            "The best-signature-time was set to the generation time %s of the timestamp %s.",

	ades.ArchLTVAcceptable:                   "Is the result of the LTV validation process acceptable?",
	ades.ArchLTVAcceptable.Answer():          "The result of the LTV validation process is not acceptable to continue the process!",
	ades.ArchTimestampAcceptable:             "Is the result of the timestamp %s validation acceptable?",
	ades.ArchTimestampAcceptable.Answer():    "The result of the timestamp %s validation is not acceptable!",
	ades.ArchEvidenceRecord:                  "Is the result of the evidence record %s validation process conclusive?",
	ades.ArchEvidenceRecord.Answer():         "The result of the evidence record %s validation process is not conclusive!",
	ades.PSVPastSignatureConclusive:          "Is past signature validation conclusive?",
	ades.PSVPastSignatureConclusive.Answer(): "The past signature validation is not conclusive!",
	ades.PSVPastCertificate:                  "Is past certificate validation acceptable?",
	ades.PSVPastCertificate.Answer():         "The past certificate validation is not acceptable!",
	ades.PSVPOEBeforeControlTime:             "Is there a POE of the signature value at (or before) control-time?",
	ades.PSVPOEBeforeControlTime.Answer():    "No Proof Of Existence found at (or before) control-time!",
	ades.ERTimestampConclusive:               "Is the archive time-stamp %s validation conclusive?",
	ades.ERTimestampConclusive.Answer():      "The archive time-stamp %s validation is not conclusive!",
}

// semantics describes every indication and sub-indication.
var semantics = map[string]string{
	string(ades.IndicationTotalPassed):   "The signature validation process results into TOTAL-PASSED.",
	string(ades.IndicationTotalFailed):   "The signature validation process results into TOTAL-FAILED because the signature is not a valid AdES.",
	string(ades.IndicationPassed):        "The validation process results into PASSED.",
	string(ades.IndicationFailed):        "The validation process results into FAILED.",
	string(ades.IndicationIndeterminate): "The available information is insufficient to ascertain whether the object is PASSED or FAILED.",

	string(ades.SubIndicationFormatFailure):                   "The object is not conformant to one of the base standards.",
	string(ades.SubIndicationHashFailure):                     "A hash of a signed data object does not match the value in the signed data object.",
	string(ades.SubIndicationSigCryptoFailure):                "The signature value could not be verified using the signer's public key.",
	string(ades.SubIndicationRevoked):                         "The signing certificate has been revoked and there is proof the signature was created after the revocation time.",
	string(ades.SubIndicationExpired):                         "The signature was created after the expiration date of the signing certificate.",
	string(ades.SubIndicationNotYetValid):                     "The signing time lies before the issuance date of the signing certificate.",
	string(ades.SubIndicationCryptoConstraintsFailure):        "An algorithm or key size is below the required security level and there is proof the object was produced after this happened.",
	string(ades.SubIndicationSigConstraintsFailure):           "The signature is not conformant to the signature constraints of the validation policy.",
	string(ades.SubIndicationChainConstraintsFailure):         "The certificate chain is not valid according to the chain constraints of the validation policy.",
	string(ades.SubIndicationCertificateChainGeneralFailure):  "The set of certificates available for chain validation produced an unspecified error.",
	string(ades.SubIndicationCryptoConstraintsFailureNoPOE):   "An algorithm or key size is below the required security level and there is no proof the object was produced before this happened.",
	string(ades.SubIndicationPolicyProcessingError):           "A given formal policy file could not be processed.",
	string(ades.SubIndicationSignaturePolicyNotAvailable):     "The signature policy referenced by the signature is not available.",
	string(ades.SubIndicationTimestampOrderFailure):           "Some constraints on the order of signature time-stamps are not respected.",
	string(ades.SubIndicationNoSigningCertificateFound):       "The signing certificate cannot be identified.",
	string(ades.SubIndicationNoCertificateChainFound):         "No certificate chain leading to a trust anchor has been found.",
	string(ades.SubIndicationRevokedNoPOE):                    "The signing certificate was revoked at the validation date and there is no proof the signature was produced before.",
	string(ades.SubIndicationRevokedCANoPOE):                  "A certificate of the chain was revoked at the validation date and there is no proof the signature was produced before.",
	string(ades.SubIndicationOutOfBoundsNoPOE):                "The signing certificate is expired or not yet valid and there is no proof the signature was produced within its validity.",
	string(ades.SubIndicationOutOfBoundsNotRevoked):           "The signing certificate is expired, known not to be revoked, and there is no proof the signature was produced within its validity.",
	string(ades.SubIndicationNoPOE):                           "A proof of existence is missing to ascertain that a signed object was produced before some compromising event.",
	string(ades.SubIndicationTryLater):                        "Not all constraints can be checked with the available information; more information may become available later.",
	string(ades.SubIndicationSignedDataNotFound):              "The signed data cannot be obtained.",
}
